package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/inkomoko/identity/internal/identity/domain"
	"github.com/inkomoko/identity/internal/identity/store"
	"github.com/inkomoko/identity/internal/identity/store/drivers/sqlite"
	"github.com/inkomoko/identity/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		FirstName:    "John",
		LastName:     "Doe",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
		Phone:        "1234567890",
	}
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("create and fetch round trip", func(t *testing.T) {
		u := newUser("john@example.com")
		require.NoError(t, st.Users().CreateUser(ctx, u))

		byID, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)
		require.Equal(t, u.PasswordHash, byID.PasswordHash)
		require.Equal(t, u.Phone, byID.Phone)
		require.False(t, byID.CreatedAt.IsZero())

		byEmail, err := st.Users().GetUserByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("duplicate email reports conflict", func(t *testing.T) {
		first := newUser("dup@example.com")
		require.NoError(t, st.Users().CreateUser(ctx, first))

		second := newUser("dup@example.com")
		err := st.Users().CreateUser(ctx, second)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("email exists pre-check", func(t *testing.T) {
		exists, err := st.Users().EmailExists(ctx, "john@example.com")
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = st.Users().EmailExists(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("missing user reports not found", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("optional phone may be empty", func(t *testing.T) {
		u := newUser("nophone@example.com")
		u.Phone = ""
		require.NoError(t, st.Users().CreateUser(ctx, u))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, got.Phone)
	})
}

func TestOrganisationsRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("create and fetch round trip", func(t *testing.T) {
		o := domain.Organisation{
			ID:          idx.New().String(),
			Name:        "John's organisation",
			Description: "John's organisation description",
		}
		require.NoError(t, st.Organisations().CreateOrganisation(ctx, o))

		got, err := st.Organisations().GetOrganisationByID(ctx, o.ID)
		require.NoError(t, err)
		require.Equal(t, o.Name, got.Name)
		require.Equal(t, o.Description, got.Description)
	})

	t.Run("missing organisation reports not found", func(t *testing.T) {
		_, err := st.Organisations().GetOrganisationByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestMembershipsRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := newUser("member@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, user))

	org := domain.Organisation{ID: idx.New().String(), Name: "Team"}
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))

	t.Run("create and list", func(t *testing.T) {
		m := domain.Membership{UserID: user.ID, OrgID: org.ID}
		require.NoError(t, st.Memberships().CreateMembership(ctx, m))

		orgs, err := st.Memberships().ListOrganisationsForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, orgs, 1)
		require.Equal(t, org.ID, orgs[0].ID)
	})

	t.Run("duplicate pair reports conflict", func(t *testing.T) {
		m := domain.Membership{UserID: user.ID, OrgID: org.ID}
		err := st.Memberships().CreateMembership(ctx, m)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("foreign keys reject dangling references", func(t *testing.T) {
		err := st.Memberships().CreateMembership(ctx, domain.Membership{
			UserID: user.ID,
			OrgID:  idx.New().String(),
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		err = st.Memberships().CreateMembership(ctx, domain.Membership{
			UserID: idx.New().String(),
			OrgID:  org.ID,
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("user with no memberships lists nothing", func(t *testing.T) {
		loner := newUser("loner@example.com")
		require.NoError(t, st.Users().CreateUser(ctx, loner))

		orgs, err := st.Memberships().ListOrganisationsForUser(ctx, loner.ID)
		require.NoError(t, err)
		require.Empty(t, orgs)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := newUser("txn@example.com")
	org := domain.Organisation{ID: idx.New().String(), Name: "Txn's organisation"}

	errBoom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	// Nothing from the failed transaction may be visible.
	_, err = st.Users().GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Organisations().GetOrganisationByID(ctx, org.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := newUser("commit@example.com")
	org := domain.Organisation{ID: idx.New().String(), Name: "Commit's organisation"}

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, domain.Membership{
			UserID: user.ID,
			OrgID:  org.ID,
		})
	})
	require.NoError(t, err)

	orgs, err := st.Memberships().ListOrganisationsForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
}

// A file-backed store uses a connection pool, so foreign key enforcement
// must come from the DSN pragma rather than a one-off PRAGMA statement that
// only reaches a single pooled connection.
func TestForeignKeysEnforcedOnFileDatabase(t *testing.T) {
	ctx := context.Background()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "identity.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	for range 3 {
		err := st.Memberships().CreateMembership(ctx, domain.Membership{
			UserID: idx.New().String(),
			OrgID:  idx.New().String(),
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	}
}
