package person_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"contactbook/api/middleware"
	"contactbook/api/person"
	"contactbook/api/response"
	personapp "contactbook/application/person"
	"contactbook/infrastructure/persistence/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ControllerSuite struct {
	suite.Suite
	store  *memory.Store
	engine *gin.Engine
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.store = memory.NewStore()
	queries := memory.NewPeopleQueryRepository(s.store)
	svc := personapp.NewApplicationService(
		memory.NewPersonRepository(s.store),
		queries,
		queries,
		memory.NewUnitOfWorkFactory(s.store),
	)

	s.engine = gin.New()
	s.engine.Use(middleware.RequestIDMiddleware(), middleware.ActorMiddleware("system"))
	person.NewController(svc).RegisterRoutes(s.engine.Group("/api/v1"))
}

func (s *ControllerSuite) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](s *ControllerSuite, w *httptest.ResponseRecorder) (response.Response, T) {
	var envelope struct {
		response.Response
		Data T `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Response, envelope.Data
}

func newPersonBody(name string) map[string]any {
	return map[string]any{
		"fullName": name,
		"homeAddress": map[string]any{
			"addressLine":  "1 Home Street",
			"phoneNumbers": []string{"+15550001"},
		},
		"businessAddress": map[string]any{
			"addressLine":  "2 Office Park",
			"phoneNumbers": []string{},
		},
	}
}

func (s *ControllerSuite) create(name string) int64 {
	w := s.do(http.MethodPost, "/api/v1/people", newPersonBody(name))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	_, id := decode[int64](s, w)
	return id
}

func (s *ControllerSuite) TestCreateReturnsLocation() {
	w := s.do(http.MethodPost, "/api/v1/people", newPersonBody("Ada Lovelace"))

	s.Equal(http.StatusCreated, w.Code)
	_, id := decode[int64](s, w)
	s.Equal(fmt.Sprintf("/api/v1/people/%d", id), w.Header().Get("Location"))
}

func (s *ControllerSuite) TestCreateValidationError() {
	body := newPersonBody("")
	w := s.do(http.MethodPost, "/api/v1/people", body)

	s.Equal(http.StatusBadRequest, w.Code)
	env, _ := decode[any](s, w)
	s.Equal("VALIDATION_ERROR", env.Error)
	s.Require().NotEmpty(env.Fields)
	s.Equal("fullName", env.Fields[0].Field)
}

func (s *ControllerSuite) TestCreateMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/people", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ControllerSuite) TestGetPerson() {
	id := s.create("Ada Lovelace")

	for _, path := range []string{"/api/v1/people/%d", "/api/v1/people/v2/%d"} {
		w := s.do(http.MethodGet, fmt.Sprintf(path, id), nil)
		s.Require().Equal(http.StatusOK, w.Code)
		_, dto := decode[personapp.PersonDto](s, w)
		s.Equal("Ada Lovelace", dto.FullName)
		s.Len(dto.Addresses, 2)
		s.Equal([]string{}, dto.Addresses[1].PhoneNumbers)
	}
}

func (s *ControllerSuite) TestGetMissingPerson() {
	w := s.do(http.MethodGet, "/api/v1/people/404", nil)
	s.Equal(http.StatusNotFound, w.Code)
	env, _ := decode[any](s, w)
	s.Equal("Person with ID 404 was not found", env.Message)

	w = s.do(http.MethodGet, "/api/v1/people/v2/404", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ControllerSuite) TestGetInvalidID() {
	w := s.do(http.MethodGet, "/api/v1/people/abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ControllerSuite) TestListPeople() {
	s.create("Alice")
	s.create("Bob")
	s.create("Carol")

	for _, path := range []string{"/api/v1/people", "/api/v1/people/v2"} {
		w := s.do(http.MethodGet, path+"?pageNumber=2&pageSize=1", nil)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		_, page := decode[personapp.PaginatedList[personapp.PersonDto]](s, w)
		s.Require().Len(page.Items, 1)
		s.Equal("Bob", page.Items[0].FullName)
		s.Equal(int64(3), page.TotalCount)
		s.True(page.HasPreviousPage)
		s.True(page.HasNextPage)
	}
}

func (s *ControllerSuite) TestListPeopleFilter() {
	s.create("Alice")
	s.create("Bob")

	w := s.do(http.MethodGet, "/api/v1/people?fullName=BO", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	_, page := decode[personapp.PaginatedList[personapp.PersonDto]](s, w)
	s.Require().Len(page.Items, 1)
	s.Equal("Bob", page.Items[0].FullName)
}

func (s *ControllerSuite) TestListPeopleDefaultsMissingPaging() {
	s.create("Alice")

	w := s.do(http.MethodGet, "/api/v1/people", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	_, page := decode[personapp.PaginatedList[personapp.PersonDto]](s, w)
	s.Equal(1, page.PageNumber)
	s.Equal(1, page.TotalPages)
	s.Len(page.Items, 1)
}

func (s *ControllerSuite) TestListPeopleRejectsZeroPaging() {
	for _, path := range []string{"/api/v1/people", "/api/v1/people/v2"} {
		for _, query := range []string{"?pageNumber=0", "?pageSize=0", "?pageNumber=0&pageSize=0"} {
			w := s.do(http.MethodGet, path+query, nil)
			s.Equal(http.StatusBadRequest, w.Code, path+query)
			env, _ := decode[any](s, w)
			s.Equal("VALIDATION_ERROR", env.Error, path+query)
		}
	}
}

func (s *ControllerSuite) TestEditPerson() {
	id := s.create("Ada Lovelace")

	w := s.do(http.MethodPut, fmt.Sprintf("/api/v1/people/%d", id), map[string]any{"id": id, "fullName": "Ada King"})
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/v1/people/%d", id), map[string]any{"id": id, "fullName": "ada king"})
	s.Equal(http.StatusBadRequest, w.Code)
	env, _ := decode[any](s, w)
	s.Equal([]string{"No changes detected."}, env.Errors)
}

func (s *ControllerSuite) TestEditPersonIDMismatch() {
	id := s.create("Ada Lovelace")

	w := s.do(http.MethodPut, fmt.Sprintf("/api/v1/people/%d", id), map[string]any{"id": id + 1, "fullName": "Ada King"})
	s.Equal(http.StatusBadRequest, w.Code)
	env, _ := decode[any](s, w)
	s.Equal("Path ID does not match the request body ID.", env.Message)
}

func (s *ControllerSuite) TestEditMissingPerson() {
	w := s.do(http.MethodPut, "/api/v1/people/9", map[string]any{"id": 9, "fullName": "Nobody"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ControllerSuite) TestUpdateAddresses() {
	id := s.create("Ada Lovelace")
	body := map[string]any{
		"personId": id,
		"address": map[string]any{
			"addressLine":  "9 Elsewhere",
			"phoneNumbers": []string{"+4420000000"},
		},
	}

	w := s.do(http.MethodPut, "/api/v1/people/update-home-address", body)
	s.Equal(http.StatusNoContent, w.Code, w.Body.String())
	w = s.do(http.MethodPut, "/api/v1/people/update-business-address", body)
	s.Equal(http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodPut, "/api/v1/people/update-home-address", body)
	s.Equal(http.StatusBadRequest, w.Code)

	body["personId"] = id + 100
	w = s.do(http.MethodPut, "/api/v1/people/update-home-address", body)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ControllerSuite) TestDeletePerson() {
	id := s.create("Ada Lovelace")

	w := s.do(http.MethodDelete, fmt.Sprintf("/api/v1/people/%d", id), nil, "X-User-ID", "auditor")
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/people/%d", id), nil)
	s.Equal(http.StatusNotFound, w.Code)

	events := s.store.Events()
	s.Require().NotEmpty(events)
	s.Equal("person.deleted", events[len(events)-1].EventName())
}
