package character

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	characterrepo "github.com/KirkDiggler/charforge/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/charforge/internal/repositories/character_draft"
)

// selections are the draft's catalog references. Missing or unknown IDs stay nil.
type selections struct {
	race       *dnd5e.Race
	class      *dnd5e.Class
	background *dnd5e.Background
}

// AdvanceStep moves to the next wizard step once the current one is complete
func (o *Orchestrator) AdvanceStep(ctx context.Context, input *AdvanceStepInput) (*AdvanceStepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Step == dnd5e.StepSummary {
		return nil, errors.FailedPrecondition("draft is already at the summary step")
	}

	sel, err := o.resolve(ctx, draft)
	if err != nil {
		return nil, err
	}
	eval, err := o.engine.EvaluateGeneration(ctx, &engine.EvaluateGenerationInput{Generation: draft.Generation})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate generation")
	}

	if reasons := stepReasons(draft, sel, eval)[draft.Step]; len(reasons) > 0 {
		return nil, errors.FailedPreconditionf("step %s is incomplete: %s", draft.Step, strings.Join(reasons, "; ")).
			WithMeta("reasons", reasons)
	}

	draft.Step = draft.Step.Next()

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &AdvanceStepOutput{Draft: draft}, nil
}

// RetreatStep moves to the previous wizard step. Selections are kept.
func (o *Orchestrator) RetreatStep(ctx context.Context, input *RetreatStepInput) (*RetreatStepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Step == dnd5e.StepRace {
		return nil, errors.FailedPrecondition("draft is already at the first step")
	}

	draft.Step = draft.Step.Previous()

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &RetreatStepOutput{Draft: draft}, nil
}

// PreviewCharacter derives provisional statistics from whatever the draft
// holds so far
func (o *Orchestrator) PreviewCharacter(ctx context.Context, input *PreviewCharacterInput) (*PreviewCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "character.PreviewCharacter",
		trace.WithAttributes(attribute.String("draft.id", input.DraftID)))
	defer span.End()

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, recordError(span, err)
	}

	sel, err := o.resolve(ctx, draft)
	if err != nil {
		return nil, recordError(span, err)
	}

	eval, err := o.engine.EvaluateGeneration(ctx, &engine.EvaluateGenerationInput{Generation: draft.Generation})
	if err != nil {
		return nil, recordError(span, errors.Wrapf(err, "failed to evaluate generation"))
	}

	derived, err := o.derive(ctx, draft, sel, eval)
	if err != nil {
		return nil, recordError(span, err)
	}

	return &PreviewCharacterOutput{
		Draft:       draft,
		Race:        sel.race,
		Class:       sel.class,
		Background:  sel.background,
		Generation:  eval,
		Derived:     derived,
		StepReasons: stepReasons(draft, sel, eval),
	}, nil
}

// FinalizeDraft turns a draft into a persisted level one character. The draft
// needs a name and complete ability scores; the draft and its dice pool are
// discarded afterwards.
func (o *Orchestrator) FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "character.FinalizeDraft",
		trace.WithAttributes(attribute.String("draft.id", input.DraftID)))
	defer span.End()

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, recordError(span, err)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", strings.TrimSpace(draft.Name), vb)
	if err := vb.Build(); err != nil {
		return nil, recordError(span, err)
	}

	eval, err := o.engine.EvaluateGeneration(ctx, &engine.EvaluateGenerationInput{Generation: draft.Generation})
	if err != nil {
		return nil, recordError(span, errors.Wrapf(err, "failed to evaluate generation"))
	}
	if !eval.Complete {
		return nil, recordError(span, errors.FailedPreconditionf("ability scores are incomplete: %s",
			strings.Join(eval.Reasons, "; ")).WithMeta("reasons", eval.Reasons))
	}

	sel, err := o.resolve(ctx, draft)
	if err != nil {
		return nil, recordError(span, err)
	}
	if blocked := blockingReasons(stepReasons(draft, sel, eval)); len(blocked) > 0 {
		return nil, recordError(span, errors.FailedPreconditionf("draft is incomplete: %s",
			strings.Join(blocked, "; ")).WithMeta("reasons", blocked))
	}

	derived, err := o.derive(ctx, draft, sel, eval)
	if err != nil {
		return nil, recordError(span, err)
	}

	char := buildCharacter(draft, sel, derived)
	char.ID = o.characterIDGen.Generate()
	char.CreatedAt = o.clock.Now()

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
		return nil, recordError(span, errors.Wrapf(err, "failed to create character"))
	}
	span.SetAttributes(attribute.String("character.id", char.ID))

	o.publish(ctx, EventCharacterFinalized, char, char.PlayerID, draft.ID)

	deleted := true
	if _, err := o.characterDraftRepo.Delete(ctx, draftrepo.DeleteInput{ID: draft.ID}); err != nil {
		// The character exists; a leftover draft expires on its own
		slog.WarnContext(ctx, "failed to delete finalized draft", "draft_id", draft.ID, "error", err)
		deleted = false
	}
	o.clearDicePool(ctx, draft.ID)

	slog.InfoContext(ctx, "character finalized",
		"character_id", char.ID, "draft_id", draft.ID, "player_id", char.PlayerID)

	return &FinalizeDraftOutput{Character: char, DraftDeleted: deleted}, nil
}

// resolve loads the draft's catalog references. Unknown IDs resolve to nil so
// a stale draft can still be previewed.
func (o *Orchestrator) resolve(ctx context.Context, draft *dnd5e.CharacterDraft) (*selections, error) {
	sel := &selections{}

	if draft.RaceID != "" {
		race, err := o.externalClient.GetRace(ctx, draft.RaceID)
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to get race")
		}
		sel.race = race
	}
	if draft.ClassID != "" {
		class, err := o.externalClient.GetClass(ctx, draft.ClassID)
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to get class")
		}
		sel.class = class
	}
	if draft.BackgroundID != "" {
		background, err := o.externalClient.GetBackground(ctx, draft.BackgroundID)
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to get background")
		}
		sel.background = background
	}

	return sel, nil
}

func (o *Orchestrator) derive(
	ctx context.Context,
	draft *dnd5e.CharacterDraft,
	sel *selections,
	eval *engine.EvaluateGenerationOutput,
) (*engine.DeriveCharacterOutput, error) {
	derived, err := o.engine.DeriveCharacter(ctx, &engine.DeriveCharacterInput{
		BaseScores:      eval.BaseScores,
		Race:            sel.race,
		Class:           sel.class,
		Background:      sel.background,
		ClassSkills:     draft.ClassSkills,
		EquipmentOption: draft.EquipmentOption,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive character")
	}
	return derived, nil
}

// stepReasons lists what blocks each step. Complete steps are absent.
func stepReasons(
	draft *dnd5e.CharacterDraft,
	sel *selections,
	eval *engine.EvaluateGenerationOutput,
) map[dnd5e.WizardStep][]string {
	reasons := make(map[dnd5e.WizardStep][]string)
	add := func(step dnd5e.WizardStep, reason string) {
		reasons[step] = append(reasons[step], reason)
	}

	switch {
	case draft.RaceID == "":
		add(dnd5e.StepRace, "no race selected")
	case sel.race == nil:
		add(dnd5e.StepRace, fmt.Sprintf("race %s is not available", draft.RaceID))
	}

	switch {
	case draft.ClassID == "":
		add(dnd5e.StepClass, "no class selected")
	case sel.class == nil:
		add(dnd5e.StepClass, fmt.Sprintf("class %s is not available", draft.ClassID))
	default:
		if need := requiredSkills(sel.class); len(draft.ClassSkills) < need {
			add(dnd5e.StepClass, fmt.Sprintf("choose %d class skills, %d chosen", need, len(draft.ClassSkills)))
		}
	}

	switch {
	case draft.BackgroundID == "":
		add(dnd5e.StepBackground, "no background selected")
	case sel.background == nil:
		add(dnd5e.StepBackground, fmt.Sprintf("background %s is not available", draft.BackgroundID))
	case sel.background.HasEquipmentOptions() && draft.EquipmentOption == dnd5e.EquipmentOptionNone:
		add(dnd5e.StepBackground, "no equipment option selected")
	}

	switch {
	case draft.Generation == nil:
		add(dnd5e.StepAbilityScores, "no generation method selected")
	case !eval.Complete:
		for _, r := range eval.Reasons {
			add(dnd5e.StepAbilityScores, r)
		}
	}

	return reasons
}

// blockingReasons flattens step reasons in wizard order, prefixed by step
func blockingReasons(reasons map[dnd5e.WizardStep][]string) []string {
	var out []string
	for _, step := range dnd5e.WizardSteps {
		for _, r := range reasons[step] {
			out = append(out, fmt.Sprintf("%s: %s", step, r))
		}
	}
	return out
}

func requiredSkills(class *dnd5e.Class) int {
	return min(class.SkillsToChoose, len(class.AvailableSkills))
}

// buildCharacter assembles the level one record. ID and CreatedAt are left
// to the caller.
func buildCharacter(draft *dnd5e.CharacterDraft, sel *selections, derived *engine.DeriveCharacterOutput) *dnd5e.Character {
	char := &dnd5e.Character{
		PlayerID:  draft.PlayerID,
		Name:      strings.TrimSpace(draft.Name),
		Level:     dnd5e.StartingLevel,
		CurrentHP: derived.Stats.HitPoints,
		MaxHP:     derived.Stats.HitPoints,
		Class:     draft.ClassID,
		Stats: dnd5e.CharacterStats{
			ArmorClass:       derived.Stats.ArmorClass,
			Initiative:       derived.Stats.Initiative,
			Speed:            derived.Stats.Speed,
			ProficiencyBonus: derived.Stats.ProficiencyBonus,
		},
		Abilities: dnd5e.NewAbilityBlock(derived.FinalScores),
		Equipment: dnd5e.CharacterEquipment{
			Race:                     draft.RaceID,
			Background:               draft.BackgroundID,
			StartingEquipment:        nonNil(derived.ClassEquipment),
			BackgroundEquipmentItems: nonNil(derived.BackgroundEquipment),
		},
		Skills: nonNil(derived.SkillProficiencies),
	}

	if sel.class != nil {
		char.Class = sel.class.Name
	}
	if sel.race != nil {
		char.Equipment.Race = sel.race.Name
	}
	if sel.background != nil {
		char.Equipment.Background = sel.background.Name
		if sel.background.HasEquipmentOptions() {
			char.Equipment.BackgroundEquipmentOption = draft.EquipmentOption
		}
	}

	return char
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
