package settlement

import "github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"

// Member identifies a group member for settlement purposes.
type Member struct {
	UserID   int64
	FullName string
}

// Row is the settlement summary for one group member.
type Row struct {
	UserID        int64       `json:"userId"`
	FullName      string      `json:"fullName"`
	TotalPaid     money.Cents `json:"totalPaid"`
	TotalReceived money.Cents `json:"totalReceived"`
	UnsettledDue  money.Cents `json:"unsettledDue"`
}

// Summarize computes one settlement row per member.
//
// paid and received map user id to the summed split amounts where that user is
// the payer or the beneficiary; members absent from either map get zero.
// UnsettledDue = TotalPaid - TotalReceived: negative means the member owes
// money to others, positive means others owe the member. Row order follows the
// member order; callers must not rely on it.
func Summarize(members []Member, paid, received map[int64]money.Cents) []Row {
	rows := make([]Row, len(members))
	for i, m := range members {
		p := paid[m.UserID]
		r := received[m.UserID]
		rows[i] = Row{
			UserID:        m.UserID,
			FullName:      m.FullName,
			TotalPaid:     p,
			TotalReceived: r,
			UnsettledDue:  p - r,
		}
	}
	return rows
}

// IsSettled reports whether every member's unsettled due is exactly zero.
func IsSettled(rows []Row) bool {
	for _, r := range rows {
		if r.UnsettledDue != 0 {
			return false
		}
	}
	return true
}
