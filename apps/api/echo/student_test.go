package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/storage/database/seed"
)

func Test_studentApi(t *testing.T) {
	app := setup(t)
	ds := seed.Default()
	ana, carlos, maria, luis := ds.Students[0], ds.Students[1], ds.Students[2], ds.Students[3]

	runHTTPTests(t, app, []httpTest{
		{name: "all", path: "/v1/students", wantCode: http.StatusOK, wantData: marshalObj(t, ds.Students)},
		{name: "search name", path: "/v1/students?search=garc%C3%ADa", wantCode: http.StatusOK, wantData: marshalObj(t, []student.Student{ana})},
		{name: "search email", path: "/v1/students?search=LOPEZ@", wantCode: http.StatusOK, wantData: marshalObj(t, []student.Student{carlos})},
		{
			name: "order by last_name", path: "/v1/students?ordering=-last_name", wantCode: http.StatusOK,
			wantData: marshalObj(t, []student.Student{maria, luis, carlos, ana}),
		},
		{name: "retrieve", path: "/v1/students/4", wantCode: http.StatusOK, wantData: marshalObj(t, luis)},
		{name: "unknown id", path: "/v1/students/42", wantCode: http.StatusNotFound, wantData: marshalObj(t, errNotFound)},
		{name: "read-only", method: http.MethodPost, path: "/v1/students", body: []byte(`{}`), wantCode: http.StatusMethodNotAllowed,
			wantData: marshalObj(t, httpErr{Error: "Method Not Allowed"})},
	})
}
