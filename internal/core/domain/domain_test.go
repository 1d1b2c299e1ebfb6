package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var p struct {
		Date domain.Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-05"}`), &p))
	assert.Equal(t, domain.NewDate(2024, time.March, 5), p.Date)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-05"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-05T10:11:12Z"}`), &p))
	assert.Equal(t, "2024-03-05", p.Date.String())

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &p))
	assert.True(t, p.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"05/03/2024"}`), &p))
}

func TestNormalizePaymentMethod(t *testing.T) {
	assert.Equal(t, domain.PaymentCreditCard, domain.NormalizePaymentMethod("card"))
	assert.Equal(t, domain.PaymentBankTransfer, domain.NormalizePaymentMethod("bank_transfer"))
}

func TestKnowledgeAnswer_Value(t *testing.T) {
	yes := true
	text := "We open at 9"
	a := domain.KnowledgeAnswer{AnswerText: &text, AnswerBoolean: &yes}

	assert.Equal(t, "true", a.Value(domain.InputBoolean))
	assert.Equal(t, "We open at 9", a.Value(domain.InputTextarea))
	assert.Equal(t, "", domain.KnowledgeAnswer{}.Value(domain.InputText))
	assert.Equal(t, "", domain.KnowledgeAnswer{}.Value(domain.InputBoolean))
}

func TestBusiness_DisplayNameAndActive(t *testing.T) {
	inactive := false
	b := domain.Business{NameEn: "Acme", NameAr: "أكمي", IsActive: &inactive}
	assert.Equal(t, "أكمي", b.DisplayName(true))
	assert.Equal(t, "Acme", b.DisplayName(false))
	assert.False(t, b.Active())
	assert.True(t, domain.Business{}.Active())
}

func TestNewAdminCapacity_OverflowNotClamped(t *testing.T) {
	c := domain.NewAdminCapacity(3, 2, 2)

	assert.Equal(t, -1, c.Remaining)
	assert.False(t, c.CanAdd)
	require.Len(t, c.Rows, 2)
	assert.False(t, c.Rows[0].Disabled)
	assert.True(t, c.Rows[1].Disabled)
	assert.True(t, c.Rows[1].Warning)

	c = domain.NewAdminCapacity(10, 0, 0)
	assert.Equal(t, 10, c.Remaining)
	assert.True(t, c.CanAdd)
	assert.Empty(t, c.Rows)
}
