package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	echoapi "github.com/trezcool/gradebook/apps/api/echo"
	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/report"
	"github.com/trezcool/gradebook/core/student"
	"github.com/trezcool/gradebook/core/subject"
	logsvc "github.com/trezcool/gradebook/services/logger"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
	"github.com/trezcool/gradebook/testutil"
)

type testApp struct {
	*echoapi.Server
	db *inmemdb.DB
}

// setup returns a server over a freshly seeded store.
// store replaces the store as the server's Resetter when given.
func setup(t *testing.T, store ...echoapi.Resetter) testApp {
	t.Helper()

	conf := core.NewTestConfig()
	db := inmemdb.OpenSeeded()

	validate, translator := testutil.NewValidator()

	subjSvc := subject.NewService(inmemdb.NewSubjectRepository(db))
	asgmtSvc := assignment.NewService(inmemdb.NewAssignmentRepository(db))
	grdSvc := grade.NewService(inmemdb.NewGradeRepository(db))
	studSvc := student.NewService(inmemdb.NewStudentRepository(db))

	var resetter echoapi.Resetter = db
	if len(store) > 0 {
		resetter = store[0]
	}

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logsvc.NewDiscardLogger(),
		Validate:      validate,
		Translator:    translator,
		SubjectSvc:    subjSvc,
		AssignmentSvc: asgmtSvc,
		GradeSvc:      grdSvc,
		StudentSvc:    studSvc,
		ReportSvc:     report.NewService(subjSvc, asgmtSvc, grdSvc, studSvc, conf.Grading.PassThreshold),
		Store:         resetter,
	})
	return testApp{Server: server, db: db}
}

type httpErr struct {
	Error string `json:"error"`
}

var errNotFound = httpErr{Error: "not found"}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func (app testApp) do(tt httpTest) *httptest.ResponseRecorder {
	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req, rec := newRequest(method, tt.path, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func unmarshalObj(t *testing.T, data []byte, obj interface{}) {
	if err := json.Unmarshal(data, obj); err != nil {
		t.Fatalf("unmarshalObj() failed: %v", err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		assert.Empty(t, rec.Body.String())
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app testApp, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}
}

func TestHome(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Gradebook API!", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
