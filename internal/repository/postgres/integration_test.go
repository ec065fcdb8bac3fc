//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shopkeep/shopkeep-server/internal/model"
	repo "github.com/shopkeep/shopkeep-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "shopkeep_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
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
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/shopkeep_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func openConnection(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newCustomer(suffix string) model.Customer {
	return model.Customer{
		Name:            "Customer " + suffix,
		Username:        "user_" + suffix,
		Email:           "user_" + suffix + "@example.com",
		PasswordHash:    "$2a$10$hash",
		ShippingAddress: "1 Main St",
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn := openConnection(t)

	customers := repo.NewCustomerRepository(conn)
	products := repo.NewProductRepository(conn)
	orders := repo.NewOrderRepository(conn)

	t.Run("customer_repository", func(t *testing.T) {
		phone := "555-0100"
		c := newCustomer("crud")
		c.PhoneNumber = &phone

		saved, err := customers.Create(ctx, c)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		require.Nil(t, saved.BillingAddress)
		require.Equal(t, &phone, saved.PhoneNumber)

		byEmail, err := customers.GetByEmail(ctx, "  USER_CRUD@example.com ")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)

		byUsername, err := customers.GetByUsername(ctx, "User_Crud")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byUsername.ID)

		byID, err := customers.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, c.Email, byID.Email)

		_, err = customers.GetByID(ctx, -1)
		require.ErrorIs(t, err, model.ErrNotFound)

		list, err := customers.List(ctx, model.DefaultPage())
		require.NoError(t, err)
		require.NotEmpty(t, list)
	})

	t.Run("product_repository", func(t *testing.T) {
		tags := "kitchen"
		saved, err := products.Create(ctx, model.Product{Name: "Blue Mug", Description: "ceramic", Tags: &tags, Price: 9.5})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		byName, err := products.GetByName(ctx, "  blue MUG ")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byName.ID)

		_, err = products.Create(ctx, model.Product{Name: "BLUE MUG", Description: "dup", Price: 1})
		require.ErrorIs(t, err, model.ErrDuplicateProductName)

		require.NoError(t, products.SetImage(ctx, saved.ID, "products/1/image", "image/png"))
		withImage, err := products.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, withImage.ImageKey)
		require.Equal(t, "image/png", *withImage.ImageContentType)

		require.ErrorIs(t, products.SetImage(ctx, -1, "k", "image/png"), model.ErrNotFound)

		_, err = products.GetByName(ctx, "missing")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("order_repository", func(t *testing.T) {
		owner, err := customers.Create(ctx, newCustomer("orders"))
		require.NoError(t, err)

		date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		saved, err := orders.Create(ctx, model.Order{
			CustomerID: owner.ID,
			OrderDate:  date,
			TotalPrice: 42,
			Status:     model.OrderStatusPending,
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		require.True(t, saved.OrderDate.Equal(date))

		pending, err := orders.ListByCustomerAndStatus(ctx, owner.ID, model.OrderStatusPending)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		shipped, err := orders.ListByCustomerAndStatus(ctx, owner.ID, model.OrderStatusShipped)
		require.NoError(t, err)
		require.Empty(t, shipped)

		all, err := orders.List(ctx, model.Page{Offset: 0, Limit: 10})
		require.NoError(t, err)
		require.NotEmpty(t, all)
	})
}

func TestOrderRepository_MissingCustomer(t *testing.T) {
	ctx := context.Background()
	conn := openConnection(t)
	orders := repo.NewOrderRepository(conn)

	_, err := orders.Create(ctx, model.Order{
		CustomerID: 999999,
		OrderDate:  time.Now().UTC(),
		TotalPrice: 1,
		Status:     model.OrderStatusPending,
	})
	require.ErrorIs(t, err, model.ErrCustomerNotFound)

	var notFound *model.CustomerNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, int64(999999), notFound.CustomerID)

	list, err := orders.ListByCustomerAndStatus(ctx, 999999, model.OrderStatusPending)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCustomerRepository_ConcurrentDuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	conn := openConnection(t)
	customers := repo.NewCustomerRepository(conn)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupErrs   int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := customers.Create(ctx, newCustomer("race"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, model.ErrDuplicateEmail), errors.Is(err, model.ErrDuplicateUsername):
				dupErrs++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
	require.Equal(t, attempts-1, dupErrs)

	_, err := customers.Create(ctx, model.Customer{
		Name:            "Other",
		Username:        "user_race_other",
		Email:           "user_race@example.com",
		PasswordHash:    "h",
		ShippingAddress: "addr",
	})
	require.ErrorIs(t, err, model.ErrDuplicateEmail)

	_, err = customers.Create(ctx, model.Customer{
		Name:            "Other",
		Username:        "user_race",
		Email:           "other_race@example.com",
		PasswordHash:    "h",
		ShippingAddress: "addr",
	})
	require.ErrorIs(t, err, model.ErrDuplicateUsername)
}

func TestCustomerRepository_ValueTooLong(t *testing.T) {
	ctx := context.Background()
	conn := openConnection(t)
	customers := repo.NewCustomerRepository(conn)

	customer := newCustomer("longphone")
	phone := strings.Repeat("1", model.MaxPhoneLength+1)
	customer.PhoneNumber = &phone

	_, err := customers.Create(ctx, customer)
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = customers.GetByUsername(ctx, customer.Username)
	require.ErrorIs(t, err, model.ErrNotFound)
}
