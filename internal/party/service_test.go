package party_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-partytype/internal/party"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockStore simulates the persistence layer using `testify/mock`.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, c *party.Contact) error {
	args := m.Called(ctx, c)
	c.ID = 42
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, id int64) (*party.Contact, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		// Hand out a copy so the service cannot alias the fixture.
		cp := *c.(*party.Contact)
		return &cp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) List(ctx context.Context) ([]party.Contact, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]party.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, c *party.Contact) error {
	return m.Called(ctx, c).Error(0)
}

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

var fixedTime = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------
// Create
// -----------------------------------------------------------------------------

func TestService_Create_PersonComposesName(t *testing.T) {
	store := new(MockStore)
	store.On("Create", mock.Anything, mock.MatchedBy(func(c *party.Contact) bool {
		return c.Name == "Doe, John" && c.CreatedAt.Equal(fixedTime)
	})).Return(nil)

	svc := party.NewService(store, MockClock{CurrentTime: fixedTime})
	c, err := svc.Create(context.Background(), party.DefaultOptions{Type: party.TypePerson}, party.Patch{
		FirstName:   party.Some("John"),
		LastName:    party.Some("Doe"),
		NameOrder:   party.Some(party.NameOrderLastCommaFirst),
		DisplayName: party.Some("ignored for persons"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), c.ID)
	assert.Equal(t, party.TypePerson, c.Type)
	assert.Equal(t, "Doe, John", c.DisplayName())
	assert.Equal(t, party.GenderMale, c.Gender, "Default gender applies")
	assert.True(t, c.Active)
	store.AssertExpectations(t)
}

func TestService_Create_OrganizationDefault(t *testing.T) {
	store := new(MockStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := party.NewService(store, MockClock{CurrentTime: fixedTime})
	c, err := svc.Create(context.Background(), party.DefaultOptions{}, party.Patch{
		DisplayName: party.Some("Acme Corp"),
		FirstName:   party.Some("John"),
	})

	require.NoError(t, err)
	assert.Equal(t, party.TypeOrganization, c.Type, "Type defaults to organization")
	assert.Equal(t, "Acme Corp", c.Name)
	assert.Empty(t, c.FirstName, "Organizations never keep person fields")
	assert.Empty(t, c.NameOrder)
	assert.Empty(t, c.Gender)
}

func TestService_Create_ExplicitOrganizationClearsPersonFields(t *testing.T) {
	store := new(MockStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := party.NewService(store, nil)
	c, err := svc.Create(context.Background(), party.DefaultOptions{Type: party.TypePerson}, party.Patch{
		Type:      party.Some(party.TypeOrganization),
		Name:      party.Some("Acme"),
		FirstName: party.Some("John"),
		LastName:  party.Some("Doe"),
		Gender:    party.Some(party.GenderFemale),
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", c.Name)
	assert.Empty(t, c.FirstName)
	assert.Empty(t, c.LastName)
	assert.Empty(t, c.Gender)
}

func TestService_Create_ValidationFailure(t *testing.T) {
	store := new(MockStore)
	svc := party.NewService(store, nil)

	_, err := svc.Create(context.Background(), party.DefaultOptions{Type: party.TypePerson}, party.Patch{})

	assert.ErrorIs(t, err, party.ErrRequired)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_StoreFailure(t *testing.T) {
	store := new(MockStore)
	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := party.NewService(store, nil)
	_, err := svc.Create(context.Background(), party.DefaultOptions{}, party.Patch{Name: party.Some("Acme")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// -----------------------------------------------------------------------------
// Write
// -----------------------------------------------------------------------------

func TestService_Write_SwitchToOrganization(t *testing.T) {
	existing := &party.Contact{
		ID:        7,
		Type:      party.TypePerson,
		Name:      "Doe John",
		FirstName: "John",
		LastName:  "Doe",
		NameOrder: party.NameOrderLastFirst,
		Gender:    party.GenderMale,
		Active:    true,
	}

	store := new(MockStore)
	store.On("Get", mock.Anything, int64(7)).Return(existing, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(c *party.Contact) bool {
		return c.Type == party.TypeOrganization &&
			c.Name == "Doe Holdings" &&
			c.FirstName == "" && c.LastName == "" &&
			c.NameOrder == "" && c.Gender == "" &&
			c.UpdatedAt.Equal(fixedTime)
	})).Return(nil)

	svc := party.NewService(store, MockClock{CurrentTime: fixedTime})
	err := svc.Write(context.Background(), []int64{7}, party.Patch{
		Type: party.Some(party.TypeOrganization),
		Name: party.Some("Doe Holdings"),
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestService_Write_RecomposesPersons(t *testing.T) {
	existing := &party.Contact{
		ID:        3,
		Type:      party.TypePerson,
		Name:      "Doe John",
		FirstName: "John",
		LastName:  "Doe",
		NameOrder: party.NameOrderLastFirst,
		Active:    true,
	}

	store := new(MockStore)
	store.On("Get", mock.Anything, int64(3)).Return(existing, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(c *party.Contact) bool {
		return c.Name == "John Doe"
	})).Return(nil)

	svc := party.NewService(store, nil)
	err := svc.Write(context.Background(), []int64{3}, party.Patch{NameOrder: party.Some(party.NameOrderFirstLast)})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestService_Write_ValidatesAllBeforeStoring(t *testing.T) {
	good := &party.Contact{ID: 1, Type: party.TypePerson, FirstName: "Ann", NameOrder: party.NameOrderFirstLast, Active: true}
	bad := &party.Contact{ID: 2, Type: party.TypePerson, LastName: "Lee", NameOrder: party.NameOrderFirstLast, Active: true}

	store := new(MockStore)
	store.On("Get", mock.Anything, int64(1)).Return(good, nil)
	store.On("Get", mock.Anything, int64(2)).Return(bad, nil)

	svc := party.NewService(store, nil)
	// Clearing the last name leaves contact 2 without any name part.
	err := svc.Write(context.Background(), []int64{1, 2}, party.Patch{LastName: party.Null[string]()})

	assert.ErrorIs(t, err, party.ErrRequired)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Write_NotFound(t *testing.T) {
	store := new(MockStore)
	store.On("Get", mock.Anything, int64(9)).Return(nil, party.ErrNotFound)

	svc := party.NewService(store, nil)
	err := svc.Write(context.Background(), []int64{9}, party.Patch{Active: party.Some(false)})

	assert.ErrorIs(t, err, party.ErrNotFound)
}
