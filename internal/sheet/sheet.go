// Package sheet renders a finalized character as a one page PDF
package sheet

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

const (
	margin     = 40.0
	lineHeight = 16.0
	labelWidth = 140.0
	fontFamily = "Helvetica"
)

var abilityLabels = map[dnd5e.Ability]string{
	dnd5e.AbilityStrength:     "STR",
	dnd5e.AbilityDexterity:    "DEX",
	dnd5e.AbilityConstitution: "CON",
	dnd5e.AbilityIntelligence: "INT",
	dnd5e.AbilityWisdom:       "WIS",
	dnd5e.AbilityCharisma:     "CHA",
}

type page struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	w   float64
}

// Render draws the character sheet and returns the PDF bytes
func Render(char *dnd5e.Character) ([]byte, error) {
	if char == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(char.Name, true)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	p := &page{
		pdf: pdf,
		// Core fonts are cp1252; accented names need translating
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
		w:  pageW - 2*margin,
	}

	p.header(char)
	p.section("Combat")
	p.row("Hit points", fmt.Sprintf("%d / %d", char.CurrentHP, char.MaxHP))
	p.row("Armor class", fmt.Sprint(char.Stats.ArmorClass))
	p.row("Initiative", signed(char.Stats.Initiative))
	p.row("Speed", fmt.Sprintf("%d ft", char.Stats.Speed))
	p.row("Proficiency bonus", signed(char.Stats.ProficiencyBonus))
	p.row("Inspiration", fmt.Sprint(char.Stats.Inspirations))

	p.abilities(char.Abilities.Scores())

	p.section("Skills")
	p.list(skillNames(char.Skills))

	p.section("Equipment")
	p.list(char.Equipment.StartingEquipment)
	if len(char.Equipment.BackgroundEquipmentItems) > 0 {
		label := "Background equipment"
		if char.Equipment.BackgroundEquipmentOption != "" {
			label = fmt.Sprintf("%s (option %s)", label, char.Equipment.BackgroundEquipmentOption)
		}
		p.row(label, "")
		p.list(char.Equipment.BackgroundEquipmentItems)
	}

	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to render character sheet")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write character sheet")
	}
	return buf.Bytes(), nil
}

func (p *page) header(char *dnd5e.Character) {
	p.pdf.SetFont(fontFamily, "B", 20)
	p.pdf.CellFormat(p.w, 26, p.tr(char.Name), "", 1, "L", false, 0, "")

	subclass := ""
	if char.Subclass != nil {
		subclass = " (" + *char.Subclass + ")"
	}
	p.pdf.SetFont(fontFamily, "", 11)
	line := fmt.Sprintf("Level %d %s %s%s, %s",
		char.Level, char.Equipment.Race, char.Class, subclass, char.Equipment.Background)
	p.pdf.CellFormat(p.w, lineHeight, p.tr(line), "B", 1, "L", false, 0, "")
	p.pdf.Ln(6)
}

func (p *page) section(title string) {
	p.pdf.Ln(6)
	p.pdf.SetFont(fontFamily, "B", 13)
	p.pdf.SetFillColor(230, 230, 230)
	p.pdf.CellFormat(p.w, lineHeight+2, p.tr(title), "", 1, "L", true, 0, "")
	p.pdf.SetFont(fontFamily, "", 11)
}

func (p *page) row(label, value string) {
	p.pdf.SetFont(fontFamily, "B", 11)
	p.pdf.CellFormat(labelWidth, lineHeight, p.tr(label), "", 0, "L", false, 0, "")
	p.pdf.SetFont(fontFamily, "", 11)
	p.pdf.CellFormat(p.w-labelWidth, lineHeight, p.tr(value), "", 1, "L", false, 0, "")
}

func (p *page) list(items []string) {
	if len(items) == 0 {
		p.pdf.CellFormat(p.w, lineHeight, "-", "", 1, "L", false, 0, "")
		return
	}
	for _, item := range items {
		p.pdf.MultiCell(p.w, lineHeight, p.tr("- "+item), "", "L", false)
	}
}

func (p *page) abilities(scores dnd5e.AbilityScores) {
	p.section("Abilities")

	boxW := p.w / float64(len(dnd5e.Abilities))
	y := p.pdf.GetY() + 4
	for i, ability := range dnd5e.Abilities {
		x := margin + float64(i)*boxW
		score := scores[ability]

		p.pdf.Rect(x+2, y, boxW-4, 54, "D")
		p.pdf.SetXY(x, y+2)
		p.pdf.SetFont(fontFamily, "B", 10)
		p.pdf.CellFormat(boxW, 12, abilityLabels[ability], "", 0, "C", false, 0, "")
		p.pdf.SetXY(x, y+16)
		p.pdf.SetFont(fontFamily, "B", 18)
		p.pdf.CellFormat(boxW, 20, fmt.Sprint(score), "", 0, "C", false, 0, "")
		p.pdf.SetXY(x, y+38)
		p.pdf.SetFont(fontFamily, "", 10)
		p.pdf.CellFormat(boxW, 12, signed(engine.Modifier(score)), "", 0, "C", false, 0, "")
	}
	p.pdf.SetXY(margin, y+60)
}

func skillNames(keys []string) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		if skill, ok := dnd5e.LookupSkill(key); ok {
			out[i] = fmt.Sprintf("%s (%s)", skill.Name, abilityLabels[skill.Ability])
			continue
		}
		out[i] = key
	}
	return out
}

func signed(v int) string {
	return fmt.Sprintf("%+d", v)
}
