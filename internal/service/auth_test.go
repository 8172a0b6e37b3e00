package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	u, err := e.auth.Register(ctx, "Jane Doe", "jane@example.com", "s3cret", model.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	sess, err := e.auth.Login(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.UserID)
	assert.Equal(t, model.RoleCustomer, sess.Role)
	assert.NotEmpty(t, sess.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.auth.Register(ctx, "Jane", "jane@example.com", "one", model.RoleCustomer)
	require.NoError(t, err)
	_, err = e.auth.Register(ctx, "Other Jane", "jane@example.com", "two", model.RoleCustomer)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// Concurrent registrations racing for one email: exactly one may win,
// regardless of interleaving.
func TestConcurrentRegisterSameEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.auth.Register(ctx, fmt.Sprintf("Jane %d", i), "jane@example.com", "s3cret", model.RoleCustomer)
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, wins, "exactly one registration must succeed")

	all, err := e.users.ListAll(ctx)
	require.NoError(t, err)
	var holders int
	for _, u := range all {
		if u.Email == "jane@example.com" {
			holders++
		}
	}
	assert.Equal(t, 1, holders, "one record may hold the email")
}

// Concurrent profile edits racing for one free email: only one account may
// end up holding it.
func TestConcurrentUpdateProfileSameEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	const n = 8
	userIDs := make([]string, n)
	for i := range userIDs {
		u, err := e.auth.Register(ctx, fmt.Sprintf("User %d", i), fmt.Sprintf("u%d@example.com", i), "s3cret", model.RoleCustomer)
		require.NoError(t, err)
		userIDs[i] = u.ID
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.auth.UpdateProfile(ctx, userIDs[i], "", "shared@example.com")
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, wins, "exactly one edit must claim the email")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.auth.Register(ctx, "Jane", "jane@example.com", "s3cret", model.RoleCustomer)
	require.NoError(t, err)

	_, err = e.auth.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = e.auth.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRoundTrip(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	u, err := e.auth.Register(ctx, "Jane", "jane@example.com", "s3cret", model.RoleAdmin)
	require.NoError(t, err)
	sess, err := e.auth.Login(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)

	resolved, err := e.auth.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.UserID)
	assert.Equal(t, model.RoleAdmin, resolved.Role)
	assert.Equal(t, "jane@example.com", resolved.Email)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsDeletedUser(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	u, err := e.auth.Register(ctx, "Jane", "jane@example.com", "s3cret", model.RoleCustomer)
	require.NoError(t, err)
	sess, err := e.auth.Login(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, e.users.Delete(ctx, u.ID))
	_, err = e.auth.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	u, err := e.auth.Register(ctx, "Jane", "jane@example.com", "s3cret", model.RoleCustomer)
	require.NoError(t, err)

	// Empty values keep the current ones.
	same, err := e.auth.UpdateProfile(ctx, u.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Jane", same.Name)
	assert.Equal(t, "jane@example.com", same.Email)

	updated, err := e.auth.UpdateProfile(ctx, u.ID, "Jane Smith", "jane.smith@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, "jane.smith@example.com", updated.Email)

	_, err = e.auth.Login(ctx, "jane.smith@example.com", "s3cret")
	require.NoError(t, err)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	u, err := e.auth.Register(ctx, "Jane", "jane@example.com", "s3cret", model.RoleCustomer)
	require.NoError(t, err)
	_, err = e.auth.Register(ctx, "John", "john@example.com", "s3cret", model.RoleCustomer)
	require.NoError(t, err)

	_, err = e.auth.UpdateProfile(ctx, u.ID, "", "john@example.com")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = e.auth.UpdateProfile(ctx, "ghost", "Name", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
