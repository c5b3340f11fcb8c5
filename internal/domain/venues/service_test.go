package venues

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubVenuesRepo struct {
	listFn func() ([]Venue, error)
}

func (s stubVenuesRepo) List(_ context.Context) ([]Venue, error) {
	return s.listFn()
}

func TestVenueLabel(t *testing.T) {
	v := Venue{ID: 1, Street: "12 College Ave", City: "Amherst", Zip: "01002", State: "MA"}
	require.Equal(t, "12 College Ave, Amherst MA 01002", v.Label())
}

func TestServiceList(t *testing.T) {
	repo := stubVenuesRepo{
		listFn: func() ([]Venue, error) {
			return []Venue{{ID: 1, Street: "12 College Ave"}}, nil
		},
	}
	got, err := NewService(repo).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
}
