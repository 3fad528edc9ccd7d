package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/services"
)

// cartBadge renders "cart:N mm:ss"; empty when nothing is held.
func cartBadge(c services.CartStatus) string {
	if c.Count == 0 {
		return ""
	}
	return fmt.Sprintf("cart:%d %s", c.Count, clockText(c.Remaining))
}

// clockText formats d as mm:ss, rounding partial seconds down.
func clockText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// getStatus is shown in the prompt. The cart badge is recomputed on every call.
func (a *App) getStatus() string {
	var parts []string

	if u, ok := a.session.User(); ok {
		name := u.Nickname
		if name == "" {
			name = u.UID
		}
		parts = append(parts, name)

		role := string(a.session.UserRole())
		if o := a.session.RoleOverride(); o != "" {
			role = string(a.session.ActualRole()) + "->" + string(o)
		}
		parts = append(parts, role)
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if b := cartBadge(a.bookingService.Cart()); b != "" {
		parts = append(parts, b)
	}

	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}
