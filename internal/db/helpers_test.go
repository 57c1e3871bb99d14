package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("flights").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("flights"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("tickets").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("airlines").
		WillReturnError(errors.New("bad connection"))

	if !HasTable(conn, "flights") {
		t.Fatalf("flights should exist")
	}
	if HasTable(conn, "tickets") {
		t.Fatalf("tickets should not exist")
	}
	if HasTable(conn, "airlines") {
		t.Fatalf("lookup error should report absent")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasColumn(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("tickets", "date").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("date"))

	if !HasColumn(conn, "tickets", "date") {
		t.Fatalf("tickets.date should exist")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
