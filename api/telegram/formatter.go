package telegram

import (
	"fmt"
	"html"
	"strings"

	"padelbot/domain/auth"
	"padelbot/domain/club"
	"padelbot/domain/player"
	"padelbot/domain/ranking"
	"padelbot/domain/tournament"
	"padelbot/internal/store"
)

// maxListButtons caps how many selectable rows a single message carries.
const maxListButtons = 10

// Formatter renders domain data as Telegram messages with inline keyboards.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func esc(s string) string { return html.EscapeString(s) }

// FormatHome renders the home screen: the global ranking plus the main
// menu. The failed state renders inline with a retry button.
func (f *Formatter) FormatHome(snap store.GlobalRankingSnapshot) (string, *InlineKeyboardMarkup) {
	var b strings.Builder
	b.WriteString("🎾 <b>Padel Pro · Ranking Global</b>\n")

	switch snap.Status {
	case store.StatusPending, store.StatusIdle:
		b.WriteString("\n⏳ Cargando ranking...")
	case store.StatusFailed:
		b.WriteString("\n⚠️ No se pudo cargar el ranking: " + esc(snap.Err))
	default:
		if len(snap.Categories) == 0 {
			b.WriteString("\nTodavía no hay entradas en el ranking.")
		}
		for _, cat := range snap.Categories {
			b.WriteString(fmt.Sprintf("\n<b>%s</b>\n", esc(cat.Name)))
			for i, e := range cat.Entries {
				if i >= maxListButtons {
					b.WriteString(fmt.Sprintf("… y %d más\n", len(cat.Entries)-i))
					break
				}
				b.WriteString(fmt.Sprintf("%2d. %s — %d pts\n", i+1, esc(e.PlayerName), e.Score))
			}
		}
	}

	rows := [][]InlineKeyboardButton{
		NewInlineKeyboardRow(
			NewInlineKeyboardButtonData("📍 Clubes", "clubs"),
			NewInlineKeyboardButtonData("🏆 Torneos", "tournaments"),
		),
		NewInlineKeyboardRow(
			NewInlineKeyboardButtonData("🔎 Buscar jugador", "search"),
			NewInlineKeyboardButtonData("👤 Mi perfil", "profile"),
		),
		NewInlineKeyboardRow(
			NewInlineKeyboardButtonData("💬 Sugerencias", "feedback"),
		),
	}
	if snap.Status == store.StatusFailed {
		rows = append(rows, NewInlineKeyboardRow(
			NewInlineKeyboardButtonData("🔄 Reintentar", "retry:home"),
		))
	}
	return b.String(), NewInlineKeyboardMarkup(rows...)
}

// FormatClubList renders the club list with one button per club.
func (f *Formatter) FormatClubList(snap store.Snapshot[*club.Club]) (string, *InlineKeyboardMarkup) {
	if snap.Status == store.StatusFailed {
		return f.FormatError("No se pudieron cargar los clubes: "+snap.Err, "retry:clubs", "back:main")
	}
	if len(snap.Items) == 0 {
		text := "📍 No hay clubes disponibles."
		keyboard := NewInlineKeyboardMarkup(
			NewInlineKeyboardRow(NewInlineKeyboardButtonData("🏠 Menú principal", "back:main")),
		)
		return text, keyboard
	}

	var rows [][]InlineKeyboardButton
	for _, c := range snap.Items {
		rows = append(rows, NewInlineKeyboardRow(
			NewInlineKeyboardButtonData(c.Name, "club:"+c.ID),
		))
	}
	rows = append(rows, NewInlineKeyboardRow(
		NewInlineKeyboardButtonData("🏠 Menú principal", "back:main"),
	))
	return "📍 <b>Clubes</b>\nElegí un club para ver sus categorías:", NewInlineKeyboardMarkup(rows...)
}

// FormatCategories renders the selected club with its category buttons.
func (f *Formatter) FormatCategories(c *club.Club) (string, *InlineKeyboardMarkup) {
	text := fmt.Sprintf("📍 <b>%s</b>\n\nElegí una categoría para ver su ranking interno:", esc(c.Name))

	var rows [][]InlineKeyboardButton
	if len(c.Categories) == 0 {
		text = fmt.Sprintf("📍 <b>%s</b>\n\nEste club todavía no tiene categorías.", esc(c.Name))
	}
	for _, cat := range c.Categories {
		rows = append(rows, NewInlineKeyboardRow(
			NewInlineKeyboardButtonData(cat.Name, "cat:"+cat.ID),
		))
	}
	rows = append(rows,
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🔙 Clubes", "clubs")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🏠 Menú principal", "back:main")),
	)
	return text, NewInlineKeyboardMarkup(rows...)
}

// FormatInternalRanking renders the internal ranking of one club category.
func (f *Formatter) FormatInternalRanking(c *club.Club, cat *club.Category, snap store.Snapshot[ranking.Entry]) (string, *InlineKeyboardMarkup) {
	if snap.Status == store.StatusFailed {
		return f.FormatError("No se pudo cargar el ranking interno: "+snap.Err, "retry:internal", "back:cats")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s · %s</b>\n\n", esc(c.Name), esc(cat.Name)))
	if len(snap.Items) == 0 {
		b.WriteString("Todavía no hay jugadores rankeados en esta categoría.")
	}
	for i, e := range snap.Items {
		b.WriteString(fmt.Sprintf("%2d. %s — %d pts\n", i+1, esc(e.PlayerName), e.Score))
	}

	keyboard := NewInlineKeyboardMarkup(
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🔙 Categorías", "back:cats")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🏠 Menú principal", "back:main")),
	)
	return b.String(), keyboard
}

// FormatTournaments renders one page of the tournament list.
func (f *Formatter) FormatTournaments(snap store.Snapshot[*tournament.Tournament]) (string, *InlineKeyboardMarkup) {
	if snap.Status == store.StatusFailed {
		return f.FormatError("No se pudieron cargar los torneos: "+snap.Err, "retry:tournaments", "back:main")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏆 <b>Torneos</b> (página %d de %d)\n\nElegí un torneo:", snap.Page, snap.PageCount))

	var rows [][]InlineKeyboardButton
	if len(snap.Items) == 0 {
		b.Reset()
		b.WriteString("🏆 No hay torneos para mostrar.")
	}
	for _, t := range snap.Items {
		label := fmt.Sprintf("%s %s", statusEmoji(t.Status), t.Name)
		rows = append(rows, NewInlineKeyboardRow(
			NewInlineKeyboardButtonData(label, "tour:"+t.ID),
		))
	}
	if nav := pageRow(snap.Page, snap.PageCount, "tpage"); nav != nil {
		rows = append(rows, nav)
	}
	rows = append(rows, NewInlineKeyboardRow(
		NewInlineKeyboardButtonData("🏠 Menú principal", "back:main"),
	))
	return b.String(), NewInlineKeyboardMarkup(rows...)
}

// FormatTournamentDetails renders one tournament with its matches grouped
// by round.
func (f *Formatter) FormatTournamentDetails(t *tournament.Tournament) (string, *InlineKeyboardMarkup) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s <b>%s</b>\n", statusEmoji(t.Status), esc(t.Name)))
	b.WriteString(fmt.Sprintf("Estado: %s\n", esc(string(t.Status))))
	if t.Club != "" {
		b.WriteString(fmt.Sprintf("Club: %s\n", esc(t.Club)))
	}
	if !t.StartDate.IsZero() {
		b.WriteString(fmt.Sprintf("Fechas: %s — %s\n", t.StartDate.Format("02/01/2006"), t.EndDate.Format("02/01/2006")))
	}
	b.WriteString(fmt.Sprintf("Parejas inscriptas: %d\n", len(t.Pairs)))

	if len(t.Matches) > 0 {
		b.WriteString("\n<b>Partidos</b>\n")
		round := ""
		for _, m := range t.Matches {
			if m.Round != round {
				round = m.Round
				b.WriteString(fmt.Sprintf("\n<i>%s</i>\n", esc(round)))
			}
			b.WriteString(fmt.Sprintf("• %s vs %s", esc(m.PairA.Label), esc(m.PairB.Label)))
			if len(m.Sets) > 0 {
				var sets []string
				for _, s := range m.Sets {
					sets = append(sets, fmt.Sprintf("%d-%d", s.GamesA, s.GamesB))
				}
				b.WriteString(" · " + strings.Join(sets, " "))
			}
			if m.Court != "" {
				b.WriteString(" · " + esc(m.Court))
			}
			b.WriteString("\n")
		}
	}

	keyboard := NewInlineKeyboardMarkup(
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🔙 Torneos", "tournaments")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🏠 Menú principal", "back:main")),
	)
	return b.String(), keyboard
}

// FormatPlayers renders one page of player search results.
func (f *Formatter) FormatPlayers(snap store.Snapshot[*player.Player]) (string, *InlineKeyboardMarkup) {
	if snap.Status == store.StatusFailed {
		return f.FormatError("No se pudo buscar jugadores: "+snap.Err, "retry:players", "back:main")
	}

	var b strings.Builder
	if snap.Search != "" {
		b.WriteString(fmt.Sprintf("🔎 Resultados para <b>%s</b>", esc(snap.Search)))
	} else {
		b.WriteString("🔎 <b>Jugadores</b>")
	}
	b.WriteString(fmt.Sprintf(" (página %d de %d, %d en total)\n", snap.Page, snap.PageCount, snap.Total))

	var rows [][]InlineKeyboardButton
	if len(snap.Items) == 0 {
		b.WriteString("\nNo se encontraron jugadores.")
	}
	for i, p := range snap.Items {
		if i >= maxListButtons {
			break
		}
		label := fmt.Sprintf("%s · %d pts", p.FullName(), p.Score)
		rows = append(rows, NewInlineKeyboardRow(
			NewInlineKeyboardButtonData(label, "player:"+p.ID),
		))
	}
	if nav := pageRow(snap.Page, snap.PageCount, "ppage"); nav != nil {
		rows = append(rows, nav)
	}
	rows = append(rows,
		NewInlineKeyboardRow(
			NewInlineKeyboardButtonData("♂ Caballeros", "pfilter:Masculino"),
			NewInlineKeyboardButtonData("♀ Damas", "pfilter:Femenino"),
			NewInlineKeyboardButtonData("Todos", "pfilter:"),
		),
		NewInlineKeyboardRow(
			NewInlineKeyboardButtonData("🔎 Nueva búsqueda", "search"),
			NewInlineKeyboardButtonData("🏠 Menú", "back:main"),
		),
	)
	return b.String(), NewInlineKeyboardMarkup(rows...)
}

// FormatPlayerDetails renders a player profile with stats, pairings and
// enrollments.
func (f *Formatter) FormatPlayerDetails(p *player.Player) (string, *InlineKeyboardMarkup) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 <b>%s</b>\n", esc(p.FullName())))
	if p.Club != "" {
		b.WriteString(fmt.Sprintf("Club: %s\n", esc(p.Club)))
	}
	if p.Category != "" {
		b.WriteString(fmt.Sprintf("Categoría: %s\n", esc(p.Category)))
	}
	b.WriteString(fmt.Sprintf("Ranking: %d pts\n", p.Score))

	b.WriteString(fmt.Sprintf("\n<b>Estadísticas</b>\nPartidos: %d jugados, %d ganados\nTorneos: %d jugados, %d ganados\n",
		p.Stats.MatchesPlayed, p.Stats.MatchesWon, p.Stats.TournamentsPlayed, p.Stats.TournamentsWon))

	if p.Drive != nil || p.Back != nil {
		b.WriteString("\n<b>Parejas</b>\n")
		if p.Drive != nil {
			b.WriteString(fmt.Sprintf("Drive junto a %s\n", esc(p.Drive.PartnerName)))
		}
		if p.Back != nil {
			b.WriteString(fmt.Sprintf("Revés junto a %s\n", esc(p.Back.PartnerName)))
		}
	}

	if len(p.Enrollments) > 0 {
		b.WriteString("\n<b>Torneos</b>\n")
		for _, e := range p.Enrollments {
			b.WriteString("• " + esc(e.TournamentName) + "\n")
		}
	}

	keyboard := NewInlineKeyboardMarkup(
		NewInlineKeyboardRow(
			NewInlineKeyboardButtonData("🤝 Pareja (yo drive)", "pairpos:drive:"+p.ID),
			NewInlineKeyboardButtonData("🤝 Pareja (yo revés)", "pairpos:reves:"+p.ID),
		),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🔙 Resultados", "players")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🏠 Menú principal", "back:main")),
	)
	return b.String(), keyboard
}

// FormatProfile renders the logged-in user's account and player record.
func (f *Formatter) FormatProfile(s *auth.Session, p *player.Player) (string, *InlineKeyboardMarkup) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 <b>%s</b>\n%s\n", esc(s.User.Username), esc(s.User.Email)))
	if p != nil {
		b.WriteString(fmt.Sprintf("\nJugador: %s\nRanking: %d pts\nPartidos ganados: %d de %d\n",
			esc(p.FullName()), p.Score, p.Stats.MatchesWon, p.Stats.MatchesPlayed))
	} else {
		b.WriteString("\nTu cuenta todavía no está vinculada a un jugador.")
	}

	keyboard := NewInlineKeyboardMarkup(
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("✏️ Editar perfil", "profile:edit")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🚪 Cerrar sesión", "logout")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🏠 Menú principal", "back:main")),
	)
	return b.String(), keyboard
}

// FormatAuthMenu renders the sign-in options for a chat with no session.
func (f *Formatter) FormatAuthMenu() (string, *InlineKeyboardMarkup) {
	text := "🔐 No iniciaste sesión.\n\nElegí una opción:"
	keyboard := NewInlineKeyboardMarkup(
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🔑 Iniciar sesión", "login")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("📝 Registrarme", "register")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("❓ Olvidé mi contraseña", "forgot")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("✉️ Confirmar email", "confirmemail")),
		NewInlineKeyboardRow(NewInlineKeyboardButtonData("🏠 Menú principal", "back:main")),
	)
	return text, keyboard
}

// FormatError renders an inline error with retry / back affordances.
// Failures are always visible text, never silent.
func (f *Formatter) FormatError(msg, retryData, backData string) (string, *InlineKeyboardMarkup) {
	var rows [][]InlineKeyboardButton
	if retryData != "" {
		rows = append(rows, NewInlineKeyboardRow(NewInlineKeyboardButtonData("🔄 Reintentar", retryData)))
	}
	if backData != "" {
		rows = append(rows, NewInlineKeyboardRow(NewInlineKeyboardButtonData("🔙 Volver", backData)))
	}
	return "⚠️ " + esc(msg), NewInlineKeyboardMarkup(rows...)
}

// pageRow builds the ◀ ▶ pagination row, or nil when there is one page.
func pageRow(page, pageCount int, prefix string) []InlineKeyboardButton {
	if pageCount <= 1 {
		return nil
	}
	var row []InlineKeyboardButton
	if page > 1 {
		row = append(row, NewInlineKeyboardButtonData("◀", fmt.Sprintf("%s:%d", prefix, page-1)))
	}
	row = append(row, NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", page, pageCount), "noop"))
	if page < pageCount {
		row = append(row, NewInlineKeyboardButtonData("▶", fmt.Sprintf("%s:%d", prefix, page+1)))
	}
	return row
}

func statusEmoji(s tournament.Status) string {
	switch s {
	case tournament.StatusOpen:
		return "🟢"
	case tournament.StatusInProgress:
		return "🟡"
	case tournament.StatusFinished:
		return "🏁"
	case tournament.StatusUpcoming:
		return "🔜"
	default:
		return "🏆"
	}
}
