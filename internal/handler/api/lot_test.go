//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/handler/api"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"
	"smart-parking/tests/common/builder"
	"smart-parking/tests/common/httptest"
	"smart-parking/tests/common/testutil"
	commandsmock "smart-parking/tests/mock/commands"
	queriesmock "smart-parking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLotCommands
	mockQueries  *queriesmock.MockLotQueries
	handler      *api.LotHandler
}

func (s *LotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.handler = api.NewLotHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/lots", s.handler.List)
	s.router.GET("/lots/:id", s.handler.Get)
	s.router.POST("/lots", s.handler.Create)
	s.router.PUT("/lots/:id", s.handler.Update)
	s.router.DELETE("/lots/:id", s.handler.Delete)
}

func (s *LotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLotHandlerSuite(t *testing.T) {
	suite.Run(t, new(LotHandlerTestSuite))
}

func (s *LotHandlerTestSuite) TestList() {
	s.Run("success: returns lots with count", func() {
		views := []*queries.LotView{builder.NewLotBuilder().BuildView(), builder.NewLotBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots", nil, "")

		var body []resdto.LotResponse
		env := httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(env.Count)
		s.Equal(2, *env.Count)
		s.Equal(10, body[0].AvailableSlots)
		s.Equal(5, body[0].OccupiedSlots)
	})

	s.Run("success: empty list still reports count 0", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.LotView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots", nil, "")
		env := httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Require().NotNil(env.Count)
		s.Equal(0, *env.Count)
	})

	s.Run("error: store failure is 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *LotHandlerTestSuite) TestGet() {
	view := builder.NewLotBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots/"+view.ID.String(), nil, "")

		var body resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid parking lot id")
	})

	s.Run("error: unknown lot", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errs.ErrLotNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lots/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Parking lot not found")
	})
}

func (s *LotHandlerTestSuite) TestCreate() {
	b := builder.NewLotBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the stored lot", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateLotInput{
			Name:          b.Name,
			Location:      b.Location,
			TotalCapacity: b.TotalCapacity,
			Description:   b.Description,
		}).Return(b.ID, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lots", reqBody, "")

		var body resdto.LotResponse
		env := httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Parking lot created successfully with auto-generated slots", env.Message)
		s.Equal(b.ID, body.ID)
		s.Equal(15, body.TotalCapacity)
	})

	s.Run("success: section override is trimmed and forwarded", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("section", " C "))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateLotInput) (uuid.UUID, error) {
				s.Require().NotNil(in.Section)
				s.Equal("C", *in.Section)
				return b.ID, nil
			})
		s.mockQueries.EXPECT().Get(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lots", requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: validation from the domain", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("totalCapacity", nil))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, lot.ErrMissingFields)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lots", requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Please provide name, location, and total capacity")
	})

	s.Run("error: wrong JSON types", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("totalCapacity", "fifteen"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lots", requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *LotHandlerTestSuite) TestUpdate() {
	b := builder.NewLotBuilder()
	url := "/lots/" + b.ID.String()

	s.Run("success: only supplied fields reach the patch", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p lot.Patch) error {
				s.Require().NotNil(p.TotalCapacity)
				s.Equal(20, *p.TotalCapacity)
				s.Nil(p.Name)
				s.Nil(p.Description)
				return nil
			})
		s.mockQueries.EXPECT().Get(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"totalCapacity": 20}, "")
		env := httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("Parking lot updated successfully", env.Message)
	})

	s.Run("error: unknown lot", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, gomock.Any()).Return(errs.ErrLotNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "X"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Parking lot not found")
	})

	s.Run("error: invalid capacity", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, gomock.Any()).Return(lot.ErrInvalidCapacity)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"totalCapacity": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Total capacity must be at least 1")
	})
}

func (s *LotHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/lots/"+id.String(), nil, "")
		env := httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("Parking lot and associated spots deleted successfully", env.Message)
		s.Empty(env.Data)
	})

	s.Run("error: unknown lot", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrLotNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/lots/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Parking lot not found")
	})
}
