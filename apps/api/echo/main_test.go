package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/reminder"
	"github.com/trezcool/feeflow/core/student"
	logsvc "github.com/trezcool/feeflow/services/logger"
	"github.com/trezcool/feeflow/storage/database/dummy"
)

var errNotFound = httpErr{Error: "not found"}

type testApp struct {
	*Server
	stdRepo student.Repository
	feeRepo fee.Repository
	pmtRepo payment.Repository
	invRepo invoice.Repository
	remRepo reminder.Repository
}

// setup returns a server over an empty store.
func setup(t *testing.T) testApp {
	conf := &core.Config{
		Env:      "test",
		TestMode: true,
		AppName:  "FeeFlow",
		Server:   core.ServerConfig{DisableReqLogs: true},
	}

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)

	db, err := dummydb.Open(dummydb.Options{})
	require.NoError(t, err, "dummydb.Open()")

	app := testApp{
		stdRepo: dummydb.NewStudentRepository(db),
		feeRepo: dummydb.NewFeeRepository(db),
		pmtRepo: dummydb.NewPaymentRepository(db),
		invRepo: dummydb.NewInvoiceRepository(db),
		remRepo: dummydb.NewReminderRepository(db),
	}

	feeSvc := fee.NewService(app.feeRepo)
	validate, translator := core.NewValidator()
	app.Server = NewServer(ServerDeps{
		Conf:        conf,
		Logger:      logger,
		StudentSvc:  student.NewService(app.stdRepo),
		FeeSvc:      feeSvc,
		PaymentSvc:  payment.NewService(app.pmtRepo),
		InvoiceSvc:  invoice.NewService(app.invRepo, feeSvc),
		ReminderSvc: reminder.NewService(app.remRepo),
		Validate:    validate,
		Translator:  translator,
	})
	return app
}

type httpErr struct {
	Error string `json:"error"`
}

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

// do runs the test request against app, defaulting to a GET expecting a 200.
func do(app http.Handler, tt httpTest) *httptest.ResponseRecorder {
	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req, rec := newRequest(method, tt.path, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	if _, ok := j1.([]interface{}); !ok {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

// checkCodeAndData compares the response with the test expectations.
// A nil wantData only checks the status code.
func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	if rec.Code != wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, wantCode, rec.Body.String())
	}
	if tt.wantData == nil {
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

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, do(app, tt))
		})
	}
}

// decode unmarshals the response body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}
