package character

import (
	"context"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

// SelectRace records the race by its catalog ID
func (o *Orchestrator) SelectRace(ctx context.Context, input *SelectRaceInput) (*SelectRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("race_id", input.RaceID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	race, err := o.externalClient.GetRace(ctx, input.RaceID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get race")
	}

	draft.RaceID = race.ID

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &SelectRaceOutput{Draft: draft, Race: race}, nil
}

// SelectClass records the class. Changing class clears skills chosen for the
// previous one.
func (o *Orchestrator) SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("class_id", input.ClassID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	class, err := o.externalClient.GetClass(ctx, input.ClassID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get class")
	}

	reset := false
	if draft.ClassID != class.ID && len(draft.ClassSkills) > 0 {
		draft.ClassSkills = nil
		reset = true
	}
	draft.ClassID = class.ID

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &SelectClassOutput{Draft: draft, Class: class, SkillsReset: reset}, nil
}

// SelectClassSkills replaces the chosen class skills. Each skill must be on
// the class list, and no more than the class allows may be chosen.
func (o *Orchestrator) SelectClassSkills(ctx context.Context, input *SelectClassSkillsInput) (*SelectClassSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.ClassID == "" {
		return nil, errors.FailedPrecondition("select a class before choosing skills")
	}

	class, err := o.externalClient.GetClass(ctx, draft.ClassID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get class")
	}

	available := make(map[string]struct{}, len(class.AvailableSkills))
	for _, s := range class.AvailableSkills {
		available[dnd5e.CanonicalSkill(s)] = struct{}{}
	}

	vb := errors.NewValidationBuilder()
	seen := make(map[string]struct{}, len(input.Skills))
	skills := make([]string, 0, len(input.Skills))
	for _, s := range input.Skills {
		skill, ok := dnd5e.LookupSkill(s)
		if !ok {
			vb.Fieldf("skills", "unknown skill %q", s)
			continue
		}
		key := skill.Key
		if _, ok := available[key]; !ok {
			vb.Fieldf("skills", "%s is not a %s skill", key, class.Name)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, key)
	}
	if len(skills) > class.SkillsToChoose {
		vb.Fieldf("skills", "%s chooses at most %d skills", class.Name, class.SkillsToChoose)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft.ClassSkills = skills

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &SelectClassSkillsOutput{Draft: draft}, nil
}

// SelectBackground records the background. Switching to a different
// background clears the equipment option.
func (o *Orchestrator) SelectBackground(ctx context.Context, input *SelectBackgroundInput) (*SelectBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("background_id", input.BackgroundID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	background, err := o.externalClient.GetBackground(ctx, input.BackgroundID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get background")
	}

	reset := false
	if draft.BackgroundID != background.ID && draft.EquipmentOption != dnd5e.EquipmentOptionNone {
		draft.EquipmentOption = dnd5e.EquipmentOptionNone
		reset = true
	}
	draft.BackgroundID = background.ID

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &SelectBackgroundOutput{Draft: draft, Background: background, OptionReset: reset}, nil
}

// SelectEquipmentOption picks package A or B of the draft's background
func (o *Orchestrator) SelectEquipmentOption(
	ctx context.Context,
	input *SelectEquipmentOptionInput,
) (*SelectEquipmentOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Option != dnd5e.EquipmentOptionA && input.Option != dnd5e.EquipmentOptionB {
		return nil, errors.InvalidArgumentf("equipment option must be A or B, got %q", input.Option)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.BackgroundID == "" {
		return nil, errors.FailedPrecondition("select a background before choosing equipment")
	}

	background, err := o.externalClient.GetBackground(ctx, draft.BackgroundID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get background")
	}
	if !background.HasEquipmentOptions() {
		return nil, errors.FailedPreconditionf("background %s has no equipment options", background.Name)
	}

	draft.EquipmentOption = input.Option

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &SelectEquipmentOptionOutput{
		Draft: draft,
		Items: append([]string(nil), background.EquipmentFor(input.Option)...),
	}, nil
}
