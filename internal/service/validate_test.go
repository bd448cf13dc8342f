package service

import (
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
)

type taggedMsg struct {
	Name   string          `json:"name" validate:"notblank"`
	Role   string          `json:"role" validate:"staff_role"`
	Status string          `json:"status" validate:"enrollment_status"`
	Amount decimal.Decimal `json:"amount" validate:"nonzero_decimal"`
	Fee    decimal.Decimal `json:"fee" validate:"nonneg_decimal"`
}

func TestValidateMsg_CustomTags(t *testing.T) {
	valid := taggedMsg{Name: "Ana", Role: "finance", Status: "enrolled", Amount: decimal.NewFromInt(-5), Fee: decimal.Zero}
	if err := validateMsg(&valid); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	err := validateMsg(&taggedMsg{Name: "  ", Role: "student", Status: "lost", Amount: decimal.Zero, Fee: decimal.NewFromInt(-1)})
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("code: expected InvalidArgument, got %v", connect.CodeOf(err))
	}
	for _, want := range []string{
		"name cannot be blank",
		"role must be one of registrar, finance, teacher, super_admin",
		"status must be one of pending, enrolled, graduated, dropped",
		"amount must be a non-zero amount",
		"fee must be zero or more",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q is missing %q", err.Error(), want)
		}
	}
}
