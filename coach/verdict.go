package coach

// Verdict pairs the decision score with the trade's financial outcome.
// Winning on a weak decision and losing on a strong one get called out
// explicitly; the point is decision quality, not the P/L.
func Verdict(result, score float64) string {
	switch {
	case result > 0 && score < 6:
		return "You won, but the decision was weak. Don't repeat that style."
	case result < 0 && score < 6:
		return "A loss on a weak decision: this is what actually bleeds the account."
	case result < 0 && score >= 7:
		return "You lost, but the decision was excellent. That is professional trading."
	default:
		return "Focus on decision quality before thinking about the result."
	}
}
