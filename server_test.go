package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aakashreddy12/CRMA/models"
	"github.com/aakashreddy12/CRMA/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Domain rejections must reach the client as 400 with the model's message,
// not vanish into the generic 500 branch.
func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	_, negativeAmountErr := models.AddPayment(ctx, 1, &models.NewPayment{
		Amount: decimal.NewFromInt(-5),
	})
	if negativeAmountErr == nil {
		t.Fatal("expected a negative amount to be rejected")
	}
	advanceDeleteErr := models.DeletePayment(ctx, models.AdvanceEntryID)
	if advanceDeleteErr == nil {
		t.Fatal("expected the advance entry delete to be refused")
	}

	cases := []struct {
		name       string
		err        error
		status     int
		wantInBody string
	}{
		{"negative payment amount", negativeAmountErr, http.StatusBadRequest, "amount must be greater than zero"},
		{"advance entry delete", advanceDeleteErr, http.StatusBadRequest, "advance entry cannot be removed"},
		{"mutation in flight", utils.ErrorMutationInFlight, http.StatusConflict, ""},
		{"record not found", utils.ErrorRecordNotFound, http.StatusNotFound, ""},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError, "something went wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

			respondError(c, tc.err)

			if w.Code != tc.status {
				t.Fatalf("status expected %d, got %d", tc.status, w.Code)
			}
			if tc.wantInBody != "" && !strings.Contains(w.Body.String(), tc.wantInBody) {
				t.Fatalf("body %q missing %q", w.Body.String(), tc.wantInBody)
			}
		})
	}
}
