package csvio

import (
	"bytes"
	"testing"

	"github.com/payflow/payflow/internal/engine"
)

func TestWriterRendersReport(t *testing.T) {
	e := engine.New()
	txs := []engine.Transaction{
		{ID: 1, Client: 2, Kind: engine.KindDeposit, Amount: 15_000},
		{ID: 2, Client: 1, Kind: engine.KindDeposit, Amount: 30_000},
		{ID: 2, Client: 1, Kind: engine.KindDispute},
		{ID: 3, Client: 3, Kind: engine.KindDeposit, Amount: 5_000},
		{ID: 3, Client: 3, Kind: engine.KindDispute},
		{ID: 3, Client: 3, Kind: engine.KindChargeback},
	}
	for i, tx := range txs {
		if err := e.Execute(tx); err != nil {
			t.Fatalf("execute %d: %v", i, err)
		}
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(e.Drain()); err != nil {
		t.Fatalf("write: %v", err)
	}

	want := "client,available,held,total,locked\n" +
		"1,0,3,3,false\n" +
		"2,1.5,0,1.5,false\n" +
		"3,0,0,0,true\n"
	if buf.String() != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriterEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "client,available,held,total,locked\n" {
		t.Fatalf("unexpected report: %q", buf.String())
	}
}
