package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenerateTeamCode__should_return_code_of_requested_length(t *testing.T) {
	code, err := GenerateTeamCode(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
}

func Test_GenerateTeamCode__should_only_use_charset_characters(t *testing.T) {
	code, err := GenerateTeamCode(64)
	assert.NoError(t, err)

	for _, c := range code {
		assert.True(t, strings.ContainsRune(teamCodeCharset, c), "unexpected character %q", c)
	}
}

func Test_GenerateTeamCode__should_return_error_for_non_positive_length(t *testing.T) {
	_, err := GenerateTeamCode(0)
	assert.Error(t, err)

	_, err = GenerateTeamCode(-5)
	assert.Error(t, err)
}
