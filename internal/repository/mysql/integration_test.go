//go:build integration

package mysql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rmontufar/usuarios-service/internal/config"
	"github.com/rmontufar/usuarios-service/internal/model"
	repo "github.com/rmontufar/usuarios-service/internal/repository/mysql"
)

var dbConfig config.Database

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "mysql:8.0",
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "root",
			},
			WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(5 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "3306")
	if err != nil {
		panic(err)
	}
	dbConfig = config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     "root",
		Password: "root",
		Name:     "ms1_test",
	}

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	ar := repo.NewAddressRepository(conn)

	t.Run("user_repository", func(t *testing.T) {
		saved, err := ur.Create(ctx, model.User{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "secret",
			Phone:    "555-0101",
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		require.Equal(t, "ana@example.com", saved.Email)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, saved, byID)

		byEmail, err := ur.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)

		taken, err := ur.EmailInUse(ctx, "ana@example.com", 0)
		require.NoError(t, err)
		require.True(t, taken)

		taken, err = ur.EmailInUse(ctx, "ana@example.com", saved.ID)
		require.NoError(t, err)
		require.False(t, taken)

		saved.Phone = "555-0199"
		updated, err := ur.Update(ctx, saved)
		require.NoError(t, err)
		require.Equal(t, "555-0199", updated.Phone)

		list, err := ur.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 1)
	})

	t.Run("address_repository", func(t *testing.T) {
		owner, err := ur.Create(ctx, model.User{
			Name:     "Luis",
			Email:    "luis@example.com",
			Password: "hunter2",
			Phone:    "555-0102",
		})
		require.NoError(t, err)

		saved, err := ar.Create(ctx, model.Address{
			UserID:     owner.ID,
			Street:     "Av. Arequipa 123",
			City:       "Lima",
			PostalCode: "15046",
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		saved.City = "Cusco"
		saved.PostalCode = "08001"
		updated, err := ar.Update(ctx, saved)
		require.NoError(t, err)
		require.Equal(t, "Cusco", updated.City)
		require.Equal(t, "Av. Arequipa 123", updated.Street)
		require.Equal(t, owner.ID, updated.UserID)

		list, err := ar.ListByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("cascade_delete", func(t *testing.T) {
		owner, err := ur.Create(ctx, model.User{
			Name:     "Marta",
			Email:    "marta@example.com",
			Password: "pw",
			Phone:    "555-0103",
		})
		require.NoError(t, err)

		address, err := ar.Create(ctx, model.Address{
			UserID:     owner.ID,
			Street:     "Jr. Cusco 456",
			City:       "Lima",
			PostalCode: "15001",
		})
		require.NoError(t, err)

		require.NoError(t, ur.Delete(ctx, owner.ID))

		_, err = ar.GetByID(ctx, address.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		list, err := ar.ListByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("provisioning_is_idempotent", func(t *testing.T) {
		again, err := repo.NewConnection(ctx, dbConfig)
		require.NoError(t, err)
		require.NoError(t, again.Ping(ctx))
		require.NoError(t, again.Close())
	})
}
