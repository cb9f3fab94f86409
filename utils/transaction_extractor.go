package utils

import (
	"regexp"
	"strings"

	"github.com/muchfin/financial-report-extractor/dto"
)

var (
	transactionDateRe   = regexp.MustCompile(`(\d{4}[-/]\d{1,2}[-/]\d{1,2})`)
	transactionAmountRe = regexp.MustCompile(`([+-]?[0-9,]+)`)
)

// categoryPatterns is the fixed transaction vocabulary, evaluated in order.
// The stored category is the alternative that actually matched, so a line
// mentioning 버스 is categorized as 버스 rather than normalized to 교통비.
var categoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(급여|월급|수입|소득)`),
	regexp.MustCompile(`(식비|음식|식사|외식)`),
	regexp.MustCompile(`(교통비|교통|지하철|버스|택시)`),
	regexp.MustCompile(`(주거비|월세|전세|관리비|집세)`),
	regexp.MustCompile(`(통신비|전화비|인터넷|휴대폰)`),
	regexp.MustCompile(`(의료비|병원|약|치료)`),
	regexp.MustCompile(`(교육비|학원|강의|도서)`),
	regexp.MustCompile(`(문화생활|영화|공연|취미)`),
	regexp.MustCompile(`(쇼핑|의류|화장품|생활용품)`),
	regexp.MustCompile(`(저축|적금|투자|펀드)`),
	regexp.MustCompile(`(보험|보험료)`),
	regexp.MustCompile(`(카드대금|대출상환)`),
}

// fallbackCategory is assigned when no category pattern matches a line.
const fallbackCategory = "기타"

// ExtractTransactions scans report text line by line and recovers discrete
// transactions. A line contributes one transaction only when it carries both
// a date token and an amount token; the amount is searched outside the date
// span so year digits are never taken for the amount. Inflows are listed
// unsigned, outflows with a leading minus, so the sign decides the type and
// only the magnitude is kept. Lines that fail to parse are skipped silently.
func ExtractTransactions(text string) []dto.Transaction {
	transactions := []dto.Transaction{}

	for _, line := range strings.Split(text, "\n") {
		dateLoc := transactionDateRe.FindStringSubmatchIndex(line)
		if dateLoc == nil {
			continue
		}
		date := line[dateLoc[2]:dateLoc[3]]

		// Space keeps digits flanking the date from fusing into one token.
		rest := line[:dateLoc[0]] + " " + line[dateLoc[1]:]
		amountMatch := transactionAmountRe.FindStringSubmatch(rest)
		if amountMatch == nil {
			continue
		}
		amount, err := parseAmount(amountMatch[1])
		if err != nil {
			continue
		}

		category := fallbackCategory
		for _, re := range categoryPatterns {
			if m := re.FindStringSubmatch(line); m != nil {
				category = m[1]
				break
			}
		}

		txType := dto.TransactionIncome
		if amount <= 0 {
			txType = dto.TransactionExpense
			amount = -amount
		}

		transactions = append(transactions, dto.Transaction{
			Date:        date,
			Category:    category,
			Amount:      float64(amount),
			Type:        txType,
			Description: strings.TrimSpace(line),
		})
	}

	return transactions
}
