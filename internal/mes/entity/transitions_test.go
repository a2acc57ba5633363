package entity

import "testing"

// TestWorkOrderTransitions tests the legal work order edges
func TestWorkOrderTransitions(t *testing.T) {
	valid := [][2]string{
		{WOStatusDraft, WOStatusIssued},
		{WOStatusIssued, WOStatusInProgress},
		{WOStatusIssued, WOStatusCancelled},
		{WOStatusInProgress, WOStatusCompleted},
		{WOStatusInProgress, WOStatusIssued},
		{WOStatusCancelled, WOStatusDraft},
	}
	for _, edge := range valid {
		if !CanTransition(ValidWorkOrderTransitions, edge[0], edge[1]) {
			t.Fatalf("expected %s → %s to be valid", edge[0], edge[1])
		}
	}

	invalid := [][2]string{
		{WOStatusDraft, WOStatusInProgress},
		{WOStatusDraft, WOStatusCancelled},
		{WOStatusCompleted, WOStatusIssued},
		{WOStatusCompleted, WOStatusInProgress},
		{WOStatusCancelled, WOStatusIssued},
	}
	for _, edge := range invalid {
		if CanTransition(ValidWorkOrderTransitions, edge[0], edge[1]) {
			t.Fatalf("expected %s → %s to be invalid", edge[0], edge[1])
		}
	}

	// completed is terminal: no outgoing edges at all
	if targets := ValidWorkOrderTransitions[WOStatusCompleted]; len(targets) != 0 {
		t.Fatalf("expected completed to be terminal, got %v", targets)
	}
}

// TestEquipmentTransitions tests the equipment status machine
func TestEquipmentTransitions(t *testing.T) {
	if !CanTransition(ValidEquipmentTransitions, EquipStatusStopped, EquipStatusRunning) {
		t.Fatal("expected stopped → running to be valid")
	}
	if !CanTransition(ValidEquipmentTransitions, EquipStatusMaintenance, EquipStatusRunning) {
		t.Fatal("expected maintenance → running to be valid")
	}
	if !CanTransition(ValidEquipmentTransitions, EquipStatusBreakdown, EquipStatusMaintenance) {
		t.Fatal("expected breakdown → maintenance to be valid")
	}

	// breakdown can only be reached through maintenance, and only exits to it
	if CanTransition(ValidEquipmentTransitions, EquipStatusStopped, EquipStatusBreakdown) {
		t.Fatal("expected stopped → breakdown to be invalid")
	}
	if CanTransition(ValidEquipmentTransitions, EquipStatusBreakdown, EquipStatusRunning) {
		t.Fatal("expected breakdown → running to be invalid")
	}
}

// TestNCRTransitions tests the NCR workflow machine
func TestNCRTransitions(t *testing.T) {
	if !CanTransition(ValidNCRTransitions, NCRStatusOpen, NCRStatusUnderReview) {
		t.Fatal("expected open → under_review to be valid")
	}
	if !CanTransition(ValidNCRTransitions, NCRStatusUnderReview, NCRStatusOpen) {
		t.Fatal("expected under_review → open (rework) to be valid")
	}
	if !CanTransition(ValidNCRTransitions, NCRStatusApproved, NCRStatusClosed) {
		t.Fatal("expected approved → closed to be valid")
	}

	if CanTransition(ValidNCRTransitions, NCRStatusOpen, NCRStatusApproved) {
		t.Fatal("expected open → approved to be invalid")
	}

	// closed is terminal
	if targets := ValidNCRTransitions[NCRStatusClosed]; len(targets) != 0 {
		t.Fatalf("expected closed to be terminal, got %v", targets)
	}
}

// TestCanTransitionUnknownStatus tests that unknown states have no edges
func TestCanTransitionUnknownStatus(t *testing.T) {
	if CanTransition(ValidWorkOrderTransitions, "bogus", WOStatusIssued) {
		t.Fatal("expected unknown status to have no transitions")
	}
}
