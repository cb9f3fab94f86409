package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/muchfin/financial-report-extractor/dto"
)

// fieldPattern is one candidate recognition rule for a numeric field. The
// first capture group must be the amount. Candidates are evaluated in
// declaration order and the first one whose capture parses wins; later
// candidates are never consulted for that field, even if they would match.
type fieldPattern struct {
	re        *regexp.Regexp
	transform func(int64) int64 // optional unit conversion on the captured amount
}

// Annual figures are reported once a year; reports list them next to monthly
// ones, so patterns tagged with this conversion divide down to a month.
func annualToMonthly(v int64) int64 { return v / 12 }

var incomePatterns = []fieldPattern{
	{re: regexp.MustCompile(`급여[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`수입[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`월급[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`월\s*수입[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`월\s*소득[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`연봉[:\s]*([0-9,]+)`), transform: annualToMonthly},
	{re: regexp.MustCompile(`연\s*소득[:\s]*([0-9,]+)`), transform: annualToMonthly},
}

var expensePatterns = []fieldPattern{
	{re: regexp.MustCompile(`지출[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`월\s*지출[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`총\s*지출[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`월\s*생활비[:\s]*([0-9,]+)`)},
	{re: regexp.MustCompile(`고정\s*지출[:\s]*([0-9,]+)`)},
}

// creditPattern recognizes either a raw score or a letter grade.
type creditPattern struct {
	re    *regexp.Regexp
	grade bool
}

var creditPatterns = []creditPattern{
	{re: regexp.MustCompile(`신용점수[:\s]*([0-9]+)`)},
	{re: regexp.MustCompile(`신용\s*점수[:\s]*([0-9]+)`)},
	{re: regexp.MustCompile(`KCB[:\s]*([0-9]+)`)},
	{re: regexp.MustCompile(`NICE[:\s]*([0-9]+)`)},
	{re: regexp.MustCompile(`신용등급[:\s]*([A-Z][+-]?)`), grade: true},
	{re: regexp.MustCompile(`신용\s*등급[:\s]*([A-Z][+-]?)`), grade: true},
}

// gradeScores maps bureau letter grades onto the numeric score scale.
var gradeScores = map[string]int{
	"A+": 850, "A": 750, "A-": 700,
	"B+": 650, "B": 600, "B-": 550,
	"C+": 500, "C": 450, "C-": 400,
	"D+": 350, "D": 300, "D-": 250,
}

// defaultGradeScore is used when a grade token matched but is not in the table.
const defaultGradeScore = 600

// assetPatterns holds one independent ordered candidate list per account
// category. A match in one category never blocks matching another.
var assetPatterns = []struct {
	balance  func(*dto.AssetBalances) *float64
	patterns []fieldPattern
}{
	{
		balance: func(a *dto.AssetBalances) *float64 { return &a.Checking },
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`입출금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`통장[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`현금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`계좌[:\s]*([0-9,]+)`)},
		},
	},
	{
		balance: func(a *dto.AssetBalances) *float64 { return &a.Savings },
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`적금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`저축[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`예금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`정기예금[:\s]*([0-9,]+)`)},
		},
	},
	{
		balance: func(a *dto.AssetBalances) *float64 { return &a.Investment },
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`투자[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`증권[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`주식[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`펀드[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`ETF[:\s]*([0-9,]+)`)},
		},
	},
	{
		balance: func(a *dto.AssetBalances) *float64 { return &a.Pension },
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`연금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`퇴직연금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`개인연금[:\s]*([0-9,]+)`)},
		},
	},
	{
		balance: func(a *dto.AssetBalances) *float64 { return &a.ISA },
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`ISA[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`개인형퇴직연금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`IRP[:\s]*([0-9,]+)`)},
		},
	},
	{
		balance: func(a *dto.AssetBalances) *float64 { return &a.Government },
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`청년도약계좌[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`희망두배통장[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`정부지원[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`청년희망적금[:\s]*([0-9,]+)`)},
			{re: regexp.MustCompile(`청년내일저축계좌[:\s]*([0-9,]+)`)},
		},
	},
}

// ExtractFields recovers income, expense, credit score and asset balances
// from raw report text. Missing fields stay at zero; savings is never read
// from the text here, it is derived later when income and expense are both
// known. The function never fails: malformed captures just move evaluation
// on to the next candidate.
func ExtractFields(text string) *dto.FinancialProfile {
	profile := dto.NewFinancialProfile()

	if v, ok := matchFirstAmount(text, incomePatterns); ok {
		profile.Income = float64(v)
	}
	if v, ok := matchFirstAmount(text, expensePatterns); ok {
		profile.Expense = float64(v)
	}
	profile.CreditScore = extractCreditScore(text)

	for _, cat := range assetPatterns {
		if v, ok := matchFirstAmount(text, cat.patterns); ok {
			*cat.balance(&profile.Assets) = float64(v)
		}
	}

	return profile
}

// matchFirstAmount evaluates candidates in order and returns the first
// successfully parsed amount, with the candidate's unit conversion applied.
func matchFirstAmount(text string, patterns []fieldPattern) (int64, bool) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		v, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		if p.transform != nil {
			v = p.transform(v)
		}
		return v, true
	}
	return 0, false
}

// extractCreditScore returns the first matched score, translating letter
// grades through the bureau table. Zero means unknown.
func extractCreditScore(text string) int {
	for _, p := range creditPatterns {
		m := p.re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if p.grade {
			if score, ok := gradeScores[m[1]]; ok {
				return score
			}
			return defaultGradeScore
		}
		score, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return score
	}
	return 0
}

// parseAmount parses a captured figure after stripping thousands separators.
func parseAmount(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
}
