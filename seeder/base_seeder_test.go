package seed

import (
	"testing"

	"inventory-api/models"
	"inventory-api/testutil"
	"inventory-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedTestUserIsIdempotent(t *testing.T) {
	utils.HashCost = bcrypt.MinCost
	t.Cleanup(func() { utils.HashCost = bcrypt.DefaultCost })
	db := testutil.NewDB(t)

	require.NoError(t, RunSeeders(db))
	require.NoError(t, RunSeeders(db))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, TestUserName, users[0].Name)
	assert.NotNil(t, users[0].EmailVerifiedAt)
	assert.True(t, utils.CheckPassword(users[0].Password, TestUserPassword))
}
