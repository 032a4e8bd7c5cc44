package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookify/rent-service/internal/errs"
	"github.com/bookify/rent-service/internal/handler"
	"github.com/bookify/rent-service/internal/model"
	"github.com/bookify/rent-service/pkg/auth"
	md "github.com/bookify/rent-service/pkg/middleware"
	"github.com/bookify/rent-service/pkg/validate"

	service_mocks "github.com/bookify/rent-service/internal/handler/mocks"
)

var rentDate = time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

func TestHandler_CreateRent(t *testing.T) {
	t.Parallel()
	type input struct {
		body     string
		username string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					RentBook(gomock.Any(), int64(42), inp.username).
					Return(model.Rent{
						RentUid:  "8b7fbb24-0be3-437c-a0b5-66cf2fb0a0b1",
						BookID:   42,
						Username: inp.username,
						Status:   model.StatusActive,
						RentDate: rentDate,
					}, nil)
			},
			input: input{
				body:     `{"bookId":42}`,
				username: "alice",
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"rentUid":"8b7fbb24-0be3-437c-a0b5-66cf2fb0a0b1","bookId":42,"username":"alice","status":"ACTIVE","rentDate":"2025-08-01T10:00:00Z","returnDate":null}`,
			},
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					RentBook(gomock.Any(), int64(404), inp.username).
					Return(model.Rent{}, errs.ErrNotFound)
			},
			input: input{
				body:     `{"bookId":404}`,
				username: "alice",
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name: "err. book unavailable",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					RentBook(gomock.Any(), int64(42), inp.username).
					Return(model.Rent{}, errs.ErrBookUnavailable)
			},
			input: input{
				body:     `{"bookId":42}`,
				username: "bob",
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is unavailable"}`,
			},
			wantErr: true,
		},
		{
			name: "err. storage contention",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					RentBook(gomock.Any(), int64(42), inp.username).
					Return(model.Rent{}, errs.ErrContention)
			},
			input: input{
				body:     `{"bookId":42}`,
				username: "alice",
			},
			response: response{
				expectedCode: http.StatusServiceUnavailable,
				expectedBody: `{"message":"storage contention"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. no identity",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {},
			input: input{
				body: `{"bookId":42}`,
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-name is empty"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid body",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {},
			input: input{
				body:     `{"bookId":0}`,
				username: "alice",
			},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/rents", h.CreateRent, md.AuthContext)

			r := httptest.NewRequest(http.MethodPost, "/rents", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.username != "" {
				r.Header.Set(auth.XUserNameHeader, tt.input.username)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ReturnRent(t *testing.T) {
	t.Parallel()
	const rentUid = "8b7fbb24-0be3-437c-a0b5-66cf2fb0a0b1"
	returnDate := rentDate.Add(48 * time.Hour)

	type input struct {
		rentUid  string
		username string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), inp.rentUid, inp.username).
					Return(model.Rent{
						RentUid:    inp.rentUid,
						BookID:     42,
						Username:   inp.username,
						Status:     model.StatusReturned,
						RentDate:   rentDate,
						ReturnDate: &returnDate,
					}, nil)
			},
			input: input{
				rentUid:  rentUid,
				username: "alice",
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"rentUid":"8b7fbb24-0be3-437c-a0b5-66cf2fb0a0b1","bookId":42,"username":"alice","status":"RETURNED","rentDate":"2025-08-01T10:00:00Z","returnDate":"2025-08-03T10:00:00Z"}`,
			},
		},
		{
			name: "err. rent not found",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), inp.rentUid, inp.username).
					Return(model.Rent{}, errs.ErrNotFound)
			},
			input: input{
				rentUid:  rentUid,
				username: "alice",
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not the owner",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), inp.rentUid, inp.username).
					Return(model.Rent{}, errs.ErrForbidden)
			},
			input: input{
				rentUid:  rentUid,
				username: "bob",
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"caller does not own this rent"}`,
			},
			wantErr: true,
		},
		{
			name: "err. already returned",
			mockBehavior: func(r *service_mocks.MockRentService, inp input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), inp.rentUid, inp.username).
					Return(model.Rent{}, errs.ErrAlreadyReturned)
			},
			input: input{
				rentUid:  rentUid,
				username: "alice",
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"rent is already returned"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/rents/:rentUid/return", h.ReturnRent, md.AuthContext)

			r := httptest.NewRequest(http.MethodPost,
				fmt.Sprintf("/rents/%s/return", tt.input.rentUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserNameHeader, tt.input.username)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetAllRents(t *testing.T) {
	t.Parallel()
	type input struct {
		username string
		role     string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok. admin",
			mockBehavior: func(r *service_mocks.MockRentService) {
				r.EXPECT().
					GetAllRents(gomock.Any()).
					Return([]model.Rent{
						{
							RentUid:  "8b7fbb24-0be3-437c-a0b5-66cf2fb0a0b1",
							BookID:   42,
							Username: "alice",
							Status:   model.StatusActive,
							RentDate: rentDate,
						},
					}, nil)
			},
			input: input{username: "root", role: auth.RoleAdmin},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"rentUid":"8b7fbb24-0be3-437c-a0b5-66cf2fb0a0b1","bookId":42,"username":"alice","status":"ACTIVE","rentDate":"2025-08-01T10:00:00Z","returnDate":null}]`,
			},
		},
		{
			name:         "err. not an admin",
			mockBehavior: func(r *service_mocks.MockRentService) {},
			input:        input{username: "alice", role: auth.RoleUser},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"admin role required"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.GET("/rents", h.GetAllRents, md.AuthContext)

			r := httptest.NewRequest(http.MethodGet, "/rents", http.NoBody)
			r.Header.Set(auth.XUserNameHeader, tt.input.username)
			r.Header.Set(auth.XUserRoleHeader, tt.input.role)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
