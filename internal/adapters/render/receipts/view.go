package receipts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qoocca/parent-pay/internal/domain"
)

type RenderOptions struct {
	Title string
}

// Render formats a receipt list for terminal output.
func Render(receipts []domain.Receipt, opts RenderOptions) string {
	s := newStyles()

	title := opts.Title
	if title == "" {
		title = "Pending receipts"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("receipts: %d", len(receipts))),
	}

	if len(receipts) == 0 {
		lines = append(lines, s.empty.Render("No receipts."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, receipt := range receipts {
		lines = append(lines, s.section.Render(renderReceipt(receipt, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderFailures summarizes a partially failed batch below the results.
func RenderFailures(failedCount int, authFailure bool) string {
	s := newStyles()

	if authFailure {
		return s.warning.Render("Some requests were rejected: please log in again.")
	}
	if failedCount > 0 {
		return s.warning.Render(fmt.Sprintf("%d receipt(s) could not be loaded.", failedCount))
	}

	return ""
}

func renderReceipt(receipt domain.Receipt, s styles) string {
	header := s.receipt.Render(fmt.Sprintf("#%d %s", receipt.ReceiptID, receipt.StudentName))
	status := statusLabel(receipt.ReceiptStatus, s)

	detail := s.detail.Render(fmt.Sprintf("%s · %s", receipt.AcademyName, receipt.ClassName))
	amount := s.amount.Render(formatAmount(receipt.Amount))
	date := s.header.Render(receipt.ReceiptDate)

	top := lipgloss.JoinHorizontal(lipgloss.Top, header, " ", status)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, "  ", detail, "  ", amount, "  ", date)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func statusLabel(status string, s styles) string {
	switch strings.ToUpper(status) {
	case "PAID":
		return s.paid.Render("[paid]")
	case "PENDING", "REQUESTED":
		return s.pending.Render("[pending]")
	default:
		return s.header.Render("[" + strings.ToLower(status) + "]")
	}
}

func formatAmount(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := strings.Join(groups, ",")
	if negative {
		formatted = "-" + formatted
	}

	return formatted + " KRW"
}
