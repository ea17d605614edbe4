//go:build integration

package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_teams/testutils"
	"go.mongodb.org/mongo-driver/mongo"
)

func Test_NewTeamRepository__should_create_unique_event_code_index(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)
	defer db.Collection("teams").Drop(context.Background())

	_, err := NewTeamRepository(db)
	assert.NoError(t, err)

	cur, err := db.Collection("teams").Indexes().List(context.Background())
	assert.NoError(t, err)
	defer cur.Close(context.Background())

	var noOfIndexes int
	for cur.Next(context.Background()) {
		var index mongo.IndexModel
		err = cur.Decode(&index)
		assert.NoError(t, err)
		noOfIndexes++
	}

	// _id index plus the compound (event, code) index
	assert.Equal(t, 2, noOfIndexes)
}
