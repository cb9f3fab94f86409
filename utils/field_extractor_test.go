package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFields(t *testing.T) {
	text := `
		월간 재무 보고서
		월 수입: 3,500,000원
		월 지출: 2,800,000원
		신용점수: 720점
		입출금: 4,500,000원
		적금: 15,000,000원
		투자: 8,000,000원
		연금: 3,000,000원
		ISA: 2,000,000원
		청년도약계좌: 5,000,000원
	`

	profile := ExtractFields(text)

	assert.Equal(t, 3500000.0, profile.Income)
	assert.Equal(t, 2800000.0, profile.Expense)
	assert.Equal(t, 720, profile.CreditScore)
	assert.Equal(t, 4500000.0, profile.Assets.Checking)
	assert.Equal(t, 15000000.0, profile.Assets.Savings)
	assert.Equal(t, 8000000.0, profile.Assets.Investment)
	assert.Equal(t, 3000000.0, profile.Assets.Pension)
	assert.Equal(t, 2000000.0, profile.Assets.ISA)
	assert.Equal(t, 5000000.0, profile.Assets.Government)
}

func TestExtractFieldsDefaultsToZero(t *testing.T) {
	profile := ExtractFields("이 문서에는 인식 가능한 금융 정보가 없습니다.")

	assert.Equal(t, 0.0, profile.Income)
	assert.Equal(t, 0.0, profile.Expense)
	assert.Equal(t, 0.0, profile.Savings)
	assert.Equal(t, 0, profile.CreditScore)
	assert.Equal(t, 0.0, profile.Assets.Checking)
	assert.Equal(t, 0.0, profile.Assets.Savings)
	assert.Equal(t, 0.0, profile.Assets.Investment)
	assert.Equal(t, 0.0, profile.Assets.Pension)
	assert.Equal(t, 0.0, profile.Assets.ISA)
	assert.Equal(t, 0.0, profile.Assets.Government)
}

func TestExtractFieldsFirstMatchWins(t *testing.T) {
	// The salary pattern is listed before the generic income pattern, so the
	// later candidate must never be consulted once the first one matched.
	text := "급여: 1,000,000\n수입: 2,000,000"

	profile := ExtractFields(text)

	assert.Equal(t, 1000000.0, profile.Income)
}

func TestExtractFieldsMalformedCaptureFallsThrough(t *testing.T) {
	// A capture of separators only does not parse; the extractor must move
	// on to the next candidate instead of giving up on the field.
	profile := ExtractFields("급여: ,,,\n수입: 2,000,000")

	assert.Equal(t, 2000000.0, profile.Income)
}

func TestExtractFieldsMalformedCaptureOnly(t *testing.T) {
	profile := ExtractFields("급여: ,,,")

	assert.Equal(t, 0.0, profile.Income)
}

func TestExtractFieldsAnnualIncome(t *testing.T) {
	profile := ExtractFields("연봉: 36,000,000")

	assert.Equal(t, 3000000.0, profile.Income)
}

func TestExtractFieldsAnnualIncomeTruncates(t *testing.T) {
	// Whole-won integer division, no rounding up.
	profile := ExtractFields("연봉: 10,000,000")

	assert.Equal(t, 833333.0, profile.Income)
}

func TestExtractCreditScoreGrades(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score int
	}{
		{"numeric score", "신용점수: 780", 780},
		{"KCB score", "KCB: 690", 690},
		{"grade A+", "신용등급: A+", 850},
		{"grade B", "신용등급: B", 600},
		{"grade D-", "신용등급: D-", 250},
		{"unknown grade falls back", "신용등급: F", 600},
		{"no score", "신용 정보 없음", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.score, ExtractFields(tt.text).CreditScore)
		})
	}
}

func TestExtractFieldsAssetCategoriesIndependent(t *testing.T) {
	// A match for one category must not block another.
	profile := ExtractFields("통장: 1,000,000\n주식: 2,000,000")

	assert.Equal(t, 1000000.0, profile.Assets.Checking)
	assert.Equal(t, 2000000.0, profile.Assets.Investment)
	assert.Equal(t, 0.0, profile.Assets.Pension)
}

func TestExtractFieldsNeverReadsSavingsDirectly(t *testing.T) {
	// An explicit savings figure is intentionally not read as the savings
	// field; it lands in the savings asset category instead.
	profile := ExtractFields("월 저축: 700,000")

	assert.Equal(t, 0.0, profile.Savings)
	assert.Equal(t, 700000.0, profile.Assets.Savings)
}

func TestExtractFieldsIdempotent(t *testing.T) {
	text := "급여: 3,000,000\n지출: 2,000,000\n신용등급: A"

	first := ExtractFields(text)
	second := ExtractFields(text)

	assert.Equal(t, first, second)
}
