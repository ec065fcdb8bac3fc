package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopkeep/shopkeep-server/internal/mocks"
	"github.com/shopkeep/shopkeep-server/internal/model"
	"github.com/shopkeep/shopkeep-server/internal/testutil"
)

func validCustomerParams() model.CreateCustomerParams {
	return model.CreateCustomerParams{
		Name:            "Adam",
		Username:        "adam1",
		Email:           "adam@x.com",
		Password:        "12345abc",
		ShippingAddress: "Mushin, Lagos.",
	}
}

func TestCustomer_Create_Success(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCustomerStore(t)
	hasher := mocks.NewPasswordHasher(t)

	params := validCustomerParams()
	params.Email = "  Adam@X.com "
	params.Username = " ADAM1"
	billing := "   "
	params.BillingAddress = &billing

	store.On("GetByEmail", mock.Anything, "adam@x.com").Return(model.Customer{}, model.ErrNotFound).Once()
	store.On("GetByUsername", mock.Anything, "adam1").Return(model.Customer{}, model.ErrNotFound).Once()
	hasher.On("Hash", "12345abc").Return("hashed", nil).Once()
	store.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.Email == "adam@x.com" &&
			c.Username == "adam1" &&
			c.PasswordHash == "hashed" &&
			c.BillingAddress == nil &&
			c.ShippingAddress == "Mushin, Lagos."
	})).Return(model.Customer{ID: 1, Username: "adam1", Email: "adam@x.com", PasswordHash: "hashed"}, nil).Once()

	svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

	customer, err := svc.Create(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)
	assert.NotEqual(t, "12345abc", customer.PasswordHash)
}

func TestCustomer_Create_DuplicateEmailReportedFirst(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCustomerStore(t)
	hasher := mocks.NewPasswordHasher(t)

	store.On("GetByEmail", mock.Anything, "adam@x.com").Return(model.Customer{ID: 9}, nil).Once()

	svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

	_, err := svc.Create(ctx, validCustomerParams())
	require.ErrorIs(t, err, model.ErrDuplicateEmail)
	store.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomer_Create_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCustomerStore(t)
	hasher := mocks.NewPasswordHasher(t)

	store.On("GetByEmail", mock.Anything, "adam@x.com").Return(model.Customer{}, model.ErrNotFound).Once()
	store.On("GetByUsername", mock.Anything, "adam1").Return(model.Customer{ID: 9}, nil).Once()

	svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

	_, err := svc.Create(ctx, validCustomerParams())
	require.ErrorIs(t, err, model.ErrDuplicateUsername)
}

func TestCustomer_Create_RaceLostAtInsert(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCustomerStore(t)
	hasher := mocks.NewPasswordHasher(t)

	store.On("GetByEmail", mock.Anything, mock.Anything).Return(model.Customer{}, model.ErrNotFound).Once()
	store.On("GetByUsername", mock.Anything, mock.Anything).Return(model.Customer{}, model.ErrNotFound).Once()
	hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
	store.On("Create", mock.Anything, mock.Anything).Return(model.Customer{}, model.ErrDuplicateUsername).Once()

	svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

	_, err := svc.Create(ctx, validCustomerParams())
	require.ErrorIs(t, err, model.ErrDuplicateUsername)
}

func TestCustomer_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.CreateCustomerParams)
		field  string
	}{
		{name: "missing name", mutate: func(p *model.CreateCustomerParams) { p.Name = " " }, field: "name"},
		{name: "missing username", mutate: func(p *model.CreateCustomerParams) { p.Username = "" }, field: "username"},
		{name: "bad email", mutate: func(p *model.CreateCustomerParams) { p.Email = "adam" }, field: "email"},
		{name: "missing shipping address", mutate: func(p *model.CreateCustomerParams) { p.ShippingAddress = "" }, field: "shipping_address"},
		{name: "short password", mutate: func(p *model.CreateCustomerParams) { p.Password = "1234567" }, field: "password"},
		{name: "long password", mutate: func(p *model.CreateCustomerParams) { p.Password = "1234567890123456789012345" }, field: "password"},
		{name: "password over bcrypt byte limit", mutate: func(p *model.CreateCustomerParams) { p.Password = strings.Repeat("😀", 24) }, field: "password"},
		{name: "long name", mutate: func(p *model.CreateCustomerParams) { p.Name = strings.Repeat("a", 256) }, field: "name"},
		{name: "long username", mutate: func(p *model.CreateCustomerParams) { p.Username = strings.Repeat("a", 256) }, field: "username"},
		{name: "long email", mutate: func(p *model.CreateCustomerParams) { p.Email = strings.Repeat("a", 250) + "@x.com" }, field: "email"},
		{name: "long phone number", mutate: func(p *model.CreateCustomerParams) { p.PhoneNumber = ptr(strings.Repeat("1", 33)) }, field: "phone_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewCustomerStore(t)
			hasher := mocks.NewPasswordHasher(t)
			svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

			params := validCustomerParams()
			tt.mutate(&params)

			_, err := svc.Create(context.Background(), params)
			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCustomer_Create_StoreError(t *testing.T) {
	store := mocks.NewCustomerStore(t)
	hasher := mocks.NewPasswordHasher(t)

	store.On("GetByEmail", mock.Anything, mock.Anything).Return(model.Customer{}, assert.AnError).Once()

	svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

	_, err := svc.Create(context.Background(), validCustomerParams())
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestCustomer_Lookups(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCustomerStore(t)
	hasher := mocks.NewPasswordHasher(t)
	svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

	store.On("GetByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1}, nil).Once()
	store.On("GetByID", mock.Anything, int64(2)).Return(model.Customer{}, model.ErrNotFound).Once()
	store.On("GetByEmail", mock.Anything, "adam@x.com").Return(model.Customer{ID: 1}, nil).Once()
	store.On("GetByUsername", mock.Anything, "adam1").Return(model.Customer{ID: 1}, nil).Once()

	c, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = svc.GetByID(ctx, 2)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.GetByEmail(ctx, " ADAM@x.com")
	require.NoError(t, err)

	_, err = svc.GetByUsername(ctx, "Adam1 ")
	require.NoError(t, err)
}

func TestCustomer_List(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewCustomerStore(t)
	svc := NewCustomer(store, mocks.NewPasswordHasher(t), testutil.MakeNoopLogger())

	store.On("List", mock.Anything, model.DefaultPage()).Return([]model.Customer{{ID: 1}, {ID: 2}}, nil).Once()

	list, err := svc.List(ctx, model.DefaultPage())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.List(ctx, model.Page{Offset: -1, Limit: 10})
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "skip", vErr.Field)

	_, err = svc.List(ctx, model.Page{Limit: model.MaxPageLimit + 1})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "limit", vErr.Field)
}

func TestCustomer_Create_PasswordKeptVerbatim(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "surrounding spaces", password: " 12345abcd "},
		{name: "multi-byte within limit", password: strings.Repeat("é", 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewCustomerStore(t)
			hasher := mocks.NewPasswordHasher(t)
			svc := NewCustomer(store, hasher, testutil.MakeNoopLogger())

			store.On("GetByEmail", mock.Anything, "adam@x.com").Return(model.Customer{}, model.ErrNotFound).Once()
			store.On("GetByUsername", mock.Anything, "adam1").Return(model.Customer{}, model.ErrNotFound).Once()
			hasher.On("Hash", tt.password).Return("hashed", nil).Once()
			store.On("Create", mock.Anything, mock.Anything).Return(model.Customer{ID: 1}, nil).Once()

			params := validCustomerParams()
			params.Password = tt.password

			_, err := svc.Create(t.Context(), params)
			require.NoError(t, err)
		})
	}
}
