package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
	"github.com/diegoclair/weekend-coverage/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func weekendOf(saturday string) domain.Weekend {
	sat, _ := time.Parse(domain.DateLayout, saturday)
	return domain.Weekend{Saturday: sat, Sunday: sat.AddDate(0, 0, 1)}
}

func TestCoverageHandler_HandleIndex(t *testing.T) {
	tests := []struct {
		name          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should list submissions in the order returned",
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().ListSubmissions().Return([]entity.Submission{
					{SaturdayDate: "2024-06-08", SaturdayDoctor: "Dr. Newest", SundayDate: "2024-06-09", SundayDoctor: "Dr. B", SubmittedAt: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
					{SaturdayDate: "2024-06-01", SaturdayDoctor: "Dr. Oldest", SundayDate: "2024-06-02", SundayDoctor: "Dr. D", SubmittedAt: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)},
				}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")

				body := resp.Body.String()
				assert.Contains(t, body, "June 08, 2024")
				assert.Contains(t, body, "2024-06-10 09:00")
				assert.Less(t, strings.Index(body, "Dr. Newest"), strings.Index(body, "Dr. Oldest"))
			},
		},
		{
			name: "Should render an empty list",
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().ListSubmissions().Return([]entity.Submission{}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				assert.Contains(t, resp.Body.String(), "No submissions yet.")
			},
		},
		{
			name: "Should return 500 when storage is unavailable",
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().ListSubmissions().
					Return(nil, fmt.Errorf("%w: corrupt file", domain.ErrStorageUnavailable)).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, resp.Code)
				assert.NotContains(t, resp.Body.String(), "corrupt file")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp := test.CreateTestRecorder()
			handler.ServeHTTP(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestCoverageHandler_HandleForm(t *testing.T) {
	weekends := []domain.Weekend{weekendOf("2024-06-01"), weekendOf("2024-06-08"), weekendOf("2024-06-15")}

	tests := []struct {
		name          string
		target        string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name:   "Should default to the upcoming weekend",
			target: "/weekend-coverage",
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().UpcomingWeekend().Return(weekendOf("2024-06-08")).Times(1)
				m.CoverageServiceMock.EXPECT().WeekendsOfYear().Return(weekends).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				body := resp.Body.String()
				assert.Contains(t, body, `value="2024-06-08"`)
				assert.Contains(t, body, `value="2024-06-09"`)
				assert.Contains(t, body, "Saturday (June 08, 2024)")
				assert.Contains(t, body, "selected>June 08 - June 09, 2024</option>")
				assert.NotContains(t, body, "Coverage submitted!")
			},
		},
		{
			name:   "Should default when only one date is given",
			target: "/weekend-coverage?sat=2024-06-15",
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().UpcomingWeekend().Return(weekendOf("2024-06-08")).Times(1)
				m.CoverageServiceMock.EXPECT().WeekendsOfYear().Return(weekends).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				assert.Contains(t, resp.Body.String(), `value="2024-06-08"`)
			},
		},
		{
			name:   "Should pre-fill the requested weekend and show the banner",
			target: "/weekend-coverage?sat=2024-06-15&sun=2024-06-16&submitted=1",
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().WeekendsOfYear().Return(weekends).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)

				body := resp.Body.String()
				assert.Contains(t, body, `value="2024-06-15"`)
				assert.Contains(t, body, `value="2024-06-16"`)
				assert.Contains(t, body, "Coverage submitted!")
				assert.Contains(t, body, "selected>June 15 - June 16, 2024</option>")
				assert.Contains(t, body, "/weekend-coverage?sat=2024-06-01&amp;sun=2024-06-02")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			resp := test.CreateTestRecorder()
			handler.ServeHTTP(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestCoverageHandler_HandleSubmit(t *testing.T) {
	tests := []struct {
		name          string
		form          url.Values
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should save and redirect to the following weekend",
			form: url.Values{
				"saturday_date":   {"2024-06-01"},
				"saturday_doctor": {"  Dr. A  "},
				"sunday_date":     {"2024-06-02"},
				"sunday_doctor":   {"Dr. B\t"},
			},
			buildMocks: func(m test.ServiceMocks) {
				gomock.InOrder(
					m.CoverageServiceMock.EXPECT().Submit(entity.Submission{
						SaturdayDate:   "2024-06-01",
						SaturdayDoctor: "Dr. A",
						SundayDate:     "2024-06-02",
						SundayDoctor:   "Dr. B",
					}).Return(nil).Times(1),
					m.CoverageServiceMock.EXPECT().FollowingWeekend("2024-06-01").Return(weekendOf("2024-06-08"), nil).Times(1),
				)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusFound, resp.Code)
				assert.Equal(t, "/weekend-coverage?sat=2024-06-08&sun=2024-06-09&submitted=1", resp.Header().Get("Location"))
			},
		},
		{
			name: "Should accept missing fields as empty strings",
			form: url.Values{},
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().Submit(entity.Submission{}).Return(nil).Times(1)
				m.CoverageServiceMock.EXPECT().FollowingWeekend("").Return(domain.Weekend{}, errors.New("invalid date")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusFound, resp.Code)
				assert.Equal(t, "/weekend-coverage?submitted=1", resp.Header().Get("Location"))
			},
		},
		{
			name: "Should return 500 when the submission cannot be saved",
			form: url.Values{"saturday_date": {"2024-06-01"}},
			buildMocks: func(m test.ServiceMocks) {
				m.CoverageServiceMock.EXPECT().Submit(gomock.Any()).
					Return(fmt.Errorf("%w: read-only filesystem", domain.ErrStorageUnavailable)).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, resp.Code)
				assert.Empty(t, resp.Header().Get("Location"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateFormRequest(t, "/submit-coverage", tt.form)
			resp := test.CreateTestRecorder()
			handler.ServeHTTP(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestCoverageHandler_HandleEntryLog(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	m.CoverageServiceMock.EXPECT().History().Return([]entity.Submission{
		{SaturdayDate: "2024-06-01", SaturdayDoctor: "Dr. First"},
		{SaturdayDate: "2024-06-08", SaturdayDoctor: "Dr. Second"},
	}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/entry-log", nil)
	resp := test.CreateTestRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Less(t, strings.Index(body, "Dr. First"), strings.Index(body, "Dr. Second"))
	assert.Contains(t, body, "<td>2</td>")
}

func TestCoverageHandler_HandleTestEmail(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "Should confirm a sent reminder"},
		{name: "Should confirm even when the send fails", err: errors.New("smtp down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			m.CoverageServiceMock.EXPECT().SendReminder(gomock.Any()).Return(tt.err).Times(1)

			req := httptest.NewRequest(http.MethodGet, "/send-test-email", nil)
			resp := test.CreateTestRecorder()
			handler.ServeHTTP(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, "Test email sent! Check the inbox.", resp.Body.String())
		})
	}
}

func TestCoverageHandler_StaticRoutes(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	resp := test.CreateTestRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/success", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Your weekend coverage has been submitted.")

	resp = test.CreateTestRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Body.String())

	resp = test.CreateTestRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/submit-coverage", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
