package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/feeflow/apps/api/echo"
	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/reminder"
	"github.com/trezcool/feeflow/core/student"
	logsvc "github.com/trezcool/feeflow/services/logger"
	"github.com/trezcool/feeflow/storage/database/dummy"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

type ServerParam struct {
	dig.In
	Conf        *core.Config
	Logger      core.Logger
	StudentSvc  *student.Service
	FeeSvc      *fee.Service
	PaymentSvc  *payment.Service
	InvoiceSvc  *invoice.Service
	ReminderSvc *reminder.Service
	Validate    *validator.Validate
	Translator  ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(conf *core.Config, loggerParam DBLoggerParam) *dummydb.DB {
	db, err := dummydb.Open(dummydb.Options{Latency: conf.Store.Latency, Seed: conf.Store.Seed})
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	loggerParam.Logger.Info(fmt.Sprintf("store ready : latency %v, seeded %v", conf.Store.Latency, conf.Store.Seed))
	return db
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

// newInvoiceService totals new invoices from the fee service.
func newInvoiceService(repo invoice.Repository, fees *fee.Service) *invoice.Service {
	return invoice.NewService(repo, fees)
}

func newServer(p ServerParam) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:        p.Conf,
		Logger:      p.Logger,
		StudentSvc:  p.StudentSvc,
		FeeSvc:      p.FeeSvc,
		PaymentSvc:  p.PaymentSvc,
		InvoiceSvc:  p.InvoiceSvc,
		ReminderSvc: p.ReminderSvc,
		Validate:    p.Validate,
		Translator:  p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))

	// repositories
	must(c.Provide(dummydb.NewStudentRepository))
	must(c.Provide(dummydb.NewFeeRepository))
	must(c.Provide(dummydb.NewPaymentRepository))
	must(c.Provide(dummydb.NewInvoiceRepository))
	must(c.Provide(dummydb.NewReminderRepository))

	// services
	must(c.Provide(student.NewService))
	must(c.Provide(fee.NewService))
	must(c.Provide(newInvoiceService))
	must(c.Provide(payment.NewService))
	must(c.Provide(reminder.NewService))

	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
