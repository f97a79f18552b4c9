package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/routes"
	"github.com/alexanderramin/plannerhub/internal/service"
)

// FormatStatus renders the status report shown by `plannerhub status`.
func FormatStatus(r *service.StatusReport, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(r.MenuTitle) + "\n")
	fmt.Fprintf(&b, "  %-12s %s\n", "Status", SaveStatusPill(r.SaveStatus))
	lastSave := Dim("never")
	if r.HasLastSave {
		lastSave = RelativeFrom(r.LastSave, now)
	}
	fmt.Fprintf(&b, "  %-12s %s\n", "Last save", lastSave)

	user := Dim("nobody (run `plannerhub login`)")
	if r.ActiveUser != nil {
		user = Bold(r.ActiveUser.Username) + " " + PermissionBadge(r.ActiveUser.Permission)
		if !r.ActiveUser.CanWrite() {
			user += " " + Dim("read-only")
		}
	}
	fmt.Fprintf(&b, "  %-12s %s\n", "Signed in", user)
	fmt.Fprintf(&b, "  %-12s %d items, %d sections, %d entries\n", "Content", r.Items, r.Sections, r.Entries)
	fmt.Fprintf(&b, "  %-12s %s\n", "Backup name", r.BackupName)
	fmt.Fprintf(&b, "  %-12s %s\n", "Dark mode", onOff(r.DarkMode))

	if r.Revision > 0 {
		fmt.Fprintf(&b, "  %-12s %d %s\n", "Revision", r.Revision, Dim("("+RelativeFrom(r.UpdatedAt, now)+")"))
	}
	if len(r.History) > 0 {
		b.WriteString("\n" + Header("Recent writes") + "\n")
		rows := make([][]string, 0, len(r.History))
		for _, w := range r.History {
			rev := Dim("--")
			if w.Revision > 0 {
				rev = fmt.Sprintf("%d", w.Revision)
			}
			rows = append(rows, []string{string(w.Op), rev, fmt.Sprintf("%d B", w.Bytes), RelativeFrom(w.CreatedAt, now)})
		}
		b.WriteString(RenderTable([]string{"OP", "REV", "SIZE", "WHEN"}, rows))
	}
	return b.String()
}

// FormatMenu renders the navigation menu. The entry whose path equals
// current is marked.
func FormatMenu(doc *domain.Document, entries []routes.Entry, current string) string {
	var b strings.Builder
	b.WriteString(Header(doc.Menu.Title) + "  " + SaveStatusPill(doc.App.SaveStatus) + "\n")
	for _, e := range entries {
		marker := "  "
		title := e.Title
		if e.Path == current {
			marker = StyleHeader.Render("▸ ")
			title = Bold(title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, title, Dim(e.Path))
	}
	return b.String()
}

func FormatUsers(users []domain.User) string {
	if len(users) == 0 {
		return Dim("No users.") + "\n"
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		active := ""
		if u.Active {
			active = StyleGreen.Render("●")
		}
		rows = append(rows, []string{active, Bold(u.Username), u.Name, PermissionBadge(u.Permission), TruncID(u.ID)})
	}
	return RenderTable([]string{"", "USERNAME", "NAME", "PERMISSION", "ID"}, rows)
}

func FormatSettings(app domain.AppConfig) string {
	var b strings.Builder
	b.WriteString(Header("Settings") + "\n")
	fmt.Fprintf(&b, "  %-12s %s\n", "Dark mode", onOff(app.DarkModeEnabled))
	fmt.Fprintf(&b, "  %-12s %s\n", "Backup name", domain.CoalesceStr(app.BackupFileName, domain.DefaultBackupFileName))
	fmt.Fprintf(&b, "  %-12s %s\n", "Status", SaveStatusPill(app.SaveStatus))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return StyleGreen.Render("on")
	}
	return Dim("off")
}
