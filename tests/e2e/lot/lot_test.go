//go:build e2e

package lot_test

import (
	"net/http"
	"testing"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/handler/dto/request"
	"smart-parking/internal/handler/dto/response"
	"smart-parking/tests/common/authtest"
	"smart-parking/tests/common/dbtest"
	"smart-parking/tests/common/httptest"
	"smart-parking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type lotSuite struct {
	e2e.SharedSuite
	adminToken string
	userToken  string
}

func TestLotSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(lotSuite))
}

func (s *lotSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
	s.userToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "driver@example.com", string(user.RoleUser))
}

func (s *lotSuite) SetupSubTest() {
	s.SetupTest()
}

func ptr[T any](v T) *T { return &v }

func (s *lotSuite) createLot(body request.CreateLotRequest) response.LotResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lots", body, s.adminToken)
	var created response.LotResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created
}

func (s *lotSuite) TestCreate() {
	s.Run("provisions spots for the capacity", func() {
		created := s.createLot(request.CreateLotRequest{
			Name:          "Mall B - Level 2",
			Location:      "12 Harbour Road",
			TotalCapacity: ptr(15),
			Description:   ptr("Covered parking"),
		})

		assert.Equal(s.T(), 15, created.TotalCapacity)
		assert.Equal(s.T(), 10, created.AvailableSlots)
		assert.Equal(s.T(), 5, created.OccupiedSlots)
		assert.Equal(s.T(), 15, dbtest.CountSpots(s.T(), s.DB, created.ID))

		var labels []string
		rows, err := s.DB.Query(s.T().Context(),
			"SELECT label FROM parking_spots WHERE lot_id = $1 AND label IN ('B1', 'B15')", created.ID)
		require.NoError(s.T(), err)
		defer rows.Close()
		for rows.Next() {
			var l string
			require.NoError(s.T(), rows.Scan(&l))
			labels = append(labels, l)
		}
		require.NoError(s.T(), rows.Err())
		assert.ElementsMatch(s.T(), []string{"B1", "B15"}, labels)
	})

	s.Run("section override", func() {
		created := s.createLot(request.CreateLotRequest{
			Name:          "Riverside Garage",
			Location:      "3 Quay Street",
			TotalCapacity: ptr(3),
			Section:       ptr("R"),
		})

		var n int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT COUNT(*) FROM parking_spots WHERE lot_id = $1 AND label LIKE 'R%' AND section = 'R'", created.ID).Scan(&n)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 3, n)
		assert.Equal(s.T(), 2, created.AvailableSlots)
	})

	s.Run("missing fields", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lots",
			request.CreateLotRequest{Name: "No capacity", Location: "Somewhere"}, s.adminToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Please provide name, location, and total capacity")
		assert.Zero(s.T(), dbtest.CountLots(s.T(), s.DB))
	})

	s.Run("user role is forbidden", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lots",
			request.CreateLotRequest{Name: "Mall A", Location: "x", TotalCapacity: ptr(5)}, s.userToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "User role user is not authorized to access this route")
		assert.Zero(s.T(), dbtest.CountLots(s.T(), s.DB))
	})

	s.Run("anonymous", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lots",
			request.CreateLotRequest{Name: "Mall A", Location: "x", TotalCapacity: ptr(5)}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Not authorized")
	})
}

// TestListAndGet shares one data set, so it does not use subtests (each
// subtest starts from an empty database).
func (s *lotSuite) TestListAndGet() {
	first := s.createLot(request.CreateLotRequest{Name: "Mall A - Ground", Location: "1 Main St", TotalCapacity: ptr(10)})
	s.createLot(request.CreateLotRequest{Name: "Mall C - Roof", Location: "2 Main St", TotalCapacity: ptr(4)})

	// list as a regular user
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots", nil, s.userToken)
	var lots []response.LotResponse
	env := httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &lots)
	require.NotNil(s.T(), env.Count)
	assert.Equal(s.T(), 2, *env.Count)
	assert.Len(s.T(), lots, 2)

	// legacy prefix
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/parking-lots", nil, s.userToken)
	lots = nil
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &lots)
	assert.Len(s.T(), lots, 2)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots/"+first.ID.String(), nil, s.userToken)
	var got response.LotResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	assert.Equal(s.T(), first.ID, got.ID)
	assert.Equal(s.T(), 6, got.AvailableSlots)
	assert.Equal(s.T(), 4, got.OccupiedSlots)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots/"+uuid.NewString(), nil, s.userToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Parking lot not found")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots/not-a-uuid", nil, s.userToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid parking lot id")
}

func (s *lotSuite) TestUpdate() {
	seed := func() response.LotResponse {
		return s.createLot(request.CreateLotRequest{Name: "Mall D", Location: "4 Main St", TotalCapacity: ptr(6), Description: ptr("old")})
	}

	s.Run("partial update keeps spots", func() {
		created := seed()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/lots/"+created.ID.String(),
			request.UpdateLotRequest{TotalCapacity: ptr(20), Description: ptr("")}, s.adminToken)

		var updated response.LotResponse
		env := httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		assert.Equal(s.T(), "Parking lot updated successfully", env.Message)
		assert.Equal(s.T(), "Mall D", updated.Name)
		assert.Equal(s.T(), 20, updated.TotalCapacity)
		require.NotNil(s.T(), updated.Description)
		assert.Empty(s.T(), *updated.Description)
		assert.Equal(s.T(), 4, updated.AvailableSlots)
		assert.Equal(s.T(), 16, updated.OccupiedSlots)
		assert.Equal(s.T(), 6, dbtest.CountSpots(s.T(), s.DB, created.ID))
	})

	s.Run("invalid capacity", func() {
		created := seed()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/lots/"+created.ID.String(),
			request.UpdateLotRequest{TotalCapacity: ptr(0)}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Total capacity must be at least 1")
	})

	s.Run("unknown lot", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/lots/"+uuid.NewString(),
			request.UpdateLotRequest{Name: ptr("Renamed")}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Parking lot not found")
	})

	s.Run("user role is forbidden", func() {
		created := seed()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/lots/"+created.ID.String(),
			request.UpdateLotRequest{Name: ptr("Hijacked")}, s.userToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func (s *lotSuite) TestDelete() {
	created := s.createLot(request.CreateLotRequest{Name: "Mall E", Location: "5 Main St", TotalCapacity: ptr(8)})

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/lots/"+created.ID.String(), nil, s.adminToken)
	env := httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	assert.Equal(s.T(), "Parking lot and associated spots deleted successfully", env.Message)

	assert.Zero(s.T(), dbtest.CountLots(s.T(), s.DB))
	assert.Zero(s.T(), dbtest.CountSpots(s.T(), s.DB, created.ID))

	again := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/lots/"+created.ID.String(), nil, s.adminToken)
	httptest.AssertErrorResponse(s.T(), again, http.StatusNotFound, "Parking lot not found")
}
