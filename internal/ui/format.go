// ABOUTME: Terminal UI formatting for commentbox output.
// ABOUTME: Uses fatih/color for the bold title, italic author and underlined timestamp.

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harper/commentbox/internal/models"
)

// TimestampLayout renders creation times with microseconds.
const TimestampLayout = "2006-01-02 15:04:05.000000"

const (
	NoComments    = "No comments found."
	EnterContinue = "\nPress enter to continue..."
)

var (
	bold      = color.New(color.Bold).SprintFunc()
	italic    = color.New(color.Italic).SprintFunc()
	underline = color.New(color.Underline).SprintFunc()
)

func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// FormatCommentListItem renders one comment as
// "<index>. <title> by <name> on <timestamp>", a rule, then the body.
func FormatCommentListItem(index int, c *models.Comment) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%d. %s by %s on %s\n",
		index, bold(c.Title), italic(c.Name), underline(FormatTimestamp(c.CreatedAt))))
	sb.WriteString(Separator())
	sb.WriteString(c.Body + "\n\n")

	return sb.String()
}

func FormatCommentList(comments []*models.Comment) string {
	if len(comments) == 0 {
		return NoComments + "\n"
	}

	var sb strings.Builder
	for i, c := range comments {
		sb.WriteString(FormatCommentListItem(i, c))
	}
	return sb.String()
}

func Separator() string {
	return strings.Repeat("-", 30) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
