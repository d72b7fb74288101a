package agent

import "strings"

// RouteDecision tags which handler an incoming message belongs to.
type RouteDecision int

const (
	RouteAnswer RouteDecision = iota
	RouteEdit
)

func (d RouteDecision) String() string {
	if d == RouteEdit {
		return "edit"
	}
	return "answer"
}

// editMarkers are the literal substrings that mark inline EAF content.
// The check is case-sensitive and purely lexical; a question that merely
// mentions one of the markers as plain text is still routed to the editor.
var editMarkers = []string{"<?xml", "<eaf", "<ANNOTATION"}

// Route classifies a message as an EAF editing request or a manual question.
// Every input is classifiable; there is no error case.
func Route(message string) RouteDecision {
	for _, marker := range editMarkers {
		if strings.Contains(message, marker) {
			return RouteEdit
		}
	}
	return RouteAnswer
}
