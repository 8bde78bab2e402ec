package services

import (
	"testing"

	"github.com/storyline-app/storyline-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestQuickParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantAmount float64
		wantType   models.RecordType
	}{
		{"manwon unit multiplied", "점심 5만원", 50000, models.TypeExpense},
		{"fractional manwon", "회식 5.5만원 결제", 55000, models.TypeExpense},
		{"comma-grouped amount", "장보기 57,000", 57000, models.TypeExpense},
		{"plain number", "coffee 4500", 4500, models.TypeExpense},
		{"income keyword", "8월 급여 입금 3,000,000", 3000000, models.TypeIncome},
		{"expense keyword wins over income", "매출 정산 수수료 출금 12000", 12000, models.TypeExpense},
		{"no amount", "할 일 정리", 0, models.TypeExpense},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := QuickParse(tc.text)
			assert.Equal(t, tc.wantAmount, got.Amount)
			assert.Equal(t, tc.wantType, got.Type)
			assert.Equal(t, tc.text, got.Title, "title keeps the original text")
		})
	}
}
