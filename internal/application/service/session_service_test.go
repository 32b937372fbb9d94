package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pgstay/booking/internal/domain/entity"
)

func newSessionFixture() (SessionService, *mockReferenceSource) {
	source := &mockReferenceSource{
		sheets: map[string][]entity.BedRow{
			"SHEET123": {
				{BedNo: "1", ACRoom: "AC", MonthlyFixedRent: "9000", DepositAmount: "5000", RoomNo: "101"},
			},
		},
	}
	return NewSessionService(source, testLogger{}), source
}

func TestSessionService_CreateAndGet(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	snap := svc.Create(ctx)
	if snap.ID == "" {
		t.Fatal("created session has no ID")
	}

	got, err := svc.Get(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != snap.ID {
		t.Errorf("Get() ID = %q, want %q", got.ID, snap.ID)
	}

	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionService_PropertySelectionLoadsBedSheet(t *testing.T) {
	svc, source := newSessionFixture()
	ctx := context.Background()
	snap := svc.Create(ctx)

	_, err := svc.Apply(ctx, snap.ID, Mutation{Op: OpEnableSection, Section: "permanent", Enabled: true})
	if err != nil {
		t.Fatalf("enable section: %v", err)
	}

	got, err := svc.Apply(ctx, snap.ID, Mutation{Op: OpSelectProperty, Section: "permanent", Value: "SHEET123,4,PGX-01"})
	if err != nil {
		t.Fatalf("select property: %v", err)
	}
	if !got.BedSelectorReady["permanent"] {
		t.Fatal("bed selector not ready after sheet load")
	}
	if len(source.sheetCalls) != 1 || source.sheetCalls[0] != "SHEET123" {
		t.Errorf("sheet calls = %v, want [SHEET123]", source.sheetCalls)
	}

	got, err = svc.Apply(ctx, snap.ID, Mutation{Op: OpSelectBed, Section: "permanent", Value: "1"})
	if err != nil {
		t.Fatalf("select bed: %v", err)
	}
	if got.Values["permanent_roomNo"] != "101" {
		t.Errorf("room = %q, want %q", got.Values["permanent_roomNo"], "101")
	}
	if got.Values["permanent_bedMonthlyRent"] != "9000" {
		t.Errorf("monthly rent = %q, want %q", got.Values["permanent_bedMonthlyRent"], "9000")
	}
}

func TestSessionService_FieldChangeRecomputesRent(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()
	snap := svc.Create(ctx)

	mutations := []Mutation{
		{Op: OpEnableSection, Section: "permanent", Enabled: true},
		{Op: OpSelectProperty, Section: "permanent", Value: "SHEET123,4,PGX-01"},
		{Op: OpSelectBed, Section: "permanent", Value: "1"},
		{Op: OpSetField, Key: "permanent_bedRentStartDate", Value: "2025-02-10"},
	}

	var err error
	got := snap
	for _, m := range mutations {
		if got, err = svc.Apply(ctx, snap.ID, m); err != nil {
			t.Fatalf("Apply(%s): %v", m.Op, err)
		}
	}
	if got.Values["permanent_bedRentAmount"] != "5700" {
		t.Errorf("rent amount = %q, want %q", got.Values["permanent_bedRentAmount"], "5700")
	}
}

func TestSessionService_BedSheetFetchFailureTolerated(t *testing.T) {
	source := &mockReferenceSource{err: errSourceDown}
	svc := NewSessionService(source, testLogger{})
	ctx := context.Background()
	snap := svc.Create(ctx)

	if _, err := svc.Apply(ctx, snap.ID, Mutation{Op: OpEnableSection, Section: "permanent", Enabled: true}); err != nil {
		t.Fatalf("enable section: %v", err)
	}

	// The fetch fails; the selection itself still succeeds and the
	// selector simply offers no beds.
	got, err := svc.Apply(ctx, snap.ID, Mutation{Op: OpSelectProperty, Section: "permanent", Value: "SHEETX,1,PG-X"})
	if err != nil {
		t.Fatalf("select property: %v", err)
	}
	if !got.BedSelectorReady["permanent"] {
		t.Error("selector should be ready with an empty sheet after a failed fetch")
	}

	got, err = svc.Apply(ctx, snap.ID, Mutation{Op: OpSelectBed, Section: "permanent", Value: "9"})
	if err != nil {
		t.Fatalf("select bed: %v", err)
	}
	if got.Values["permanent_bedNo"] != "9" {
		t.Errorf("bed no = %q, want raw selection preserved", got.Values["permanent_bedNo"])
	}
	if got.Values["permanent_roomNo"] != "" {
		t.Error("dependent fields must stay empty with no sheet data")
	}
}

func TestSessionService_UnknownMutation(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()
	snap := svc.Create(ctx)

	if _, err := svc.Apply(ctx, snap.ID, Mutation{Op: "teleport"}); !errors.Is(err, ErrUnknownMutation) {
		t.Errorf("Apply(teleport) error = %v, want ErrUnknownMutation", err)
	}
}
