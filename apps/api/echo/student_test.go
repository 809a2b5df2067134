package echoapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/student"
	"github.com/trezcool/feeflow/tests"
)

func Test_studentApi_query(t *testing.T) {
	app := setup(t)

	path := func(search string, status student.Status) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if status != "" {
			v.Add("status", string(status))
		}
		return "/api/students?" + v.Encode()
	}

	emma := testutil.CreateStudent(t, app.stdRepo, "Emma Johnson", "emma@email.com", student.StatusActive)
	liam := testutil.CreateStudent(t, app.stdRepo, "Liam Smith", "liam@email.com", student.StatusInactive)
	olivia := testutil.CreateStudent(t, app.stdRepo, "Olivia Brown", "olivia.johnson@email.com", student.StatusActive)

	runHTTPTests(t, app, []httpTest{
		{name: "Get all", path: "/api/students", wantData: marchallList(t, emma, liam, olivia)},
		{name: "trailing slash", path: "/api/students/", wantData: marchallList(t, emma, liam, olivia)},
		{name: "search (unknown)", path: path("lol", ""), wantData: marchallList(t)},
		{name: "search=JOHNSON", path: path("JOHNSON", ""), wantData: marchallList(t, emma, olivia)},
		{name: "status=inactive", path: path("", student.StatusInactive), wantData: marchallList(t, liam)},
		{name: "search & status", path: path("johnson", student.StatusInactive), wantData: marchallList(t)},
	})
}

func Test_studentApi_create(t *testing.T) {
	app := setup(t)
	testutil.CreateStudent(t, app.stdRepo, "Emma Johnson", "emma@email.com", student.StatusActive)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "missing fields",
			method:   http.MethodPost,
			path:     "/api/students",
			body:     []byte(`{"name": "  ", "email": "noah"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"name":            "this field is required",
				"email":           "email must be a valid email address",
				"phone":           "this field is required",
				"enrollment_date": "this field is required",
			}),
		},
		{
			name:     "invalid status",
			method:   http.MethodPost,
			path:     "/api/students",
			body:     []byte(`{"name": "Noah", "email": "noah@email.com", "phone": "555", "enrollment_date": "2024-01-08", "status": "expelled"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"status": "status must be one of [active inactive]"}),
		},
		{
			name:     "invalid date",
			method:   http.MethodPost,
			path:     "/api/students",
			body:     []byte(`{"name": "Noah", "enrollment_date": "08/01/2024"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/api/students",
			body:     []byte(`{"name": `),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "success",
			method:   http.MethodPost,
			path:     "/api/students",
			body:     []byte(`{"name": " Noah Davis ", "email": "Noah@Email.com", "phone": "(555) 111-2222", "enrollment_date": "2024-01-08"}`),
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, student.Student{
				ID:             2,
				Name:           "Noah Davis",
				Email:          "noah@email.com",
				Phone:          "(555) 111-2222",
				EnrollmentDate: core.MustParseDate("2024-01-08"),
				Status:         student.StatusActive,
			}),
		},
	})

	students, err := app.stdRepo.QueryAllStudents(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 2, "only the valid student is stored")
}

func Test_studentApi_detail(t *testing.T) {
	app := setup(t)
	emma := testutil.CreateStudent(t, app.stdRepo, "Emma Johnson", "emma@email.com", student.StatusActive)

	inactive := emma
	inactive.Status = student.StatusInactive

	runHTTPTests(t, app, []httpTest{
		{name: "retrieve", path: "/api/students/1", wantData: marchallObj(t, emma)},
		{name: "retrieve (unknown)", path: "/api/students/42", wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
		{name: "retrieve (bad id)", path: "/api/students/abc", wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
		{
			name:     "update (invalid)",
			method:   http.MethodPut,
			path:     "/api/students/1",
			body:     []byte(`{"email": "emma"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": "email must be a valid email address"}),
		},
		{
			name:     "partial update",
			method:   http.MethodPatch,
			path:     "/api/students/1",
			body:     []byte(`{"status": "inactive"}`),
			wantData: marchallObj(t, inactive),
		},
		{
			name:     "update (unknown)",
			method:   http.MethodPut,
			path:     "/api/students/42",
			body:     []byte(`{"status": "inactive"}`),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{name: "delete", method: http.MethodDelete, path: "/api/students/1", wantData: marchallObj(t, inactive)},
		{name: "delete (again)", method: http.MethodDelete, path: "/api/students/1", wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
		{name: "retrieve (deleted)", path: "/api/students/1", wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
	})
}
