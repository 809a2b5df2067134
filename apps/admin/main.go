package main

import (
	"log"
	"os"

	"github.com/trezcool/feeflow/core"
	"github.com/trezcool/feeflow/core/dashboard"
	"github.com/trezcool/feeflow/core/fee"
	"github.com/trezcool/feeflow/core/invoice"
	"github.com/trezcool/feeflow/core/payment"
	"github.com/trezcool/feeflow/core/reminder"
	"github.com/trezcool/feeflow/core/student"
	logsvc "github.com/trezcool/feeflow/services/logger"
	"github.com/trezcool/feeflow/storage/database/dummy"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)

	// the admin works on a freshly seeded store, without simulated latency
	db, err := dummydb.Open(dummydb.Options{Seed: true})
	if err != nil {
		logger.Fatal("opening store", err)
	}

	feeSvc := fee.NewService(dummydb.NewFeeRepository(db))
	sources := dashboard.Sources{
		Students: student.NewService(dummydb.NewStudentRepository(db)),
		Fees:     feeSvc,
		Payments: payment.NewService(dummydb.NewPaymentRepository(db)),
		Invoices: invoice.NewService(dummydb.NewInvoiceRepository(db), feeSvc),
	}

	// start CLI
	cli := newCommandLine(sources, reminder.NewService(dummydb.NewReminderRepository(db)), os.Stdout)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}
