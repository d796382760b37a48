// Package v1alpha1 exposes the character creation wizard over gRPC. Messages
// are google.protobuf.Struct values holding snake_case JSON objects.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully qualified service names
const (
	CharacterCreationServiceName = "charforge.v1alpha1.CharacterCreation"
	DiceServiceName              = "charforge.v1alpha1.DiceService"
)

// CharacterCreation method names
const (
	MethodCreateDraft           = "CreateDraft"
	MethodGetDraft              = "GetDraft"
	MethodDeleteDraft           = "DeleteDraft"
	MethodUpdateName            = "UpdateName"
	MethodSelectRace            = "SelectRace"
	MethodSelectClass           = "SelectClass"
	MethodSelectClassSkills     = "SelectClassSkills"
	MethodSelectBackground      = "SelectBackground"
	MethodSelectEquipmentOption = "SelectEquipmentOption"
	MethodSetGenerationMethod   = "SetGenerationMethod"
	MethodSetPointBuyScore      = "SetPointBuyScore"
	MethodAssignAbilitySlot     = "AssignAbilitySlot"
	MethodRerollAbilityScores   = "RerollAbilityScores"
	MethodAdvanceStep           = "AdvanceStep"
	MethodRetreatStep           = "RetreatStep"
	MethodPreviewCharacter      = "PreviewCharacter"
	MethodFinalizeDraft         = "FinalizeDraft"
	MethodGetCharacter          = "GetCharacter"
	MethodListCharacters        = "ListCharacters"
	MethodDeleteCharacter       = "DeleteCharacter"
	MethodExportCharacterSheet  = "ExportCharacterSheet"
	MethodListRaces             = "ListRaces"
	MethodListClasses           = "ListClasses"
	MethodListBackgrounds       = "ListBackgrounds"
)

// DiceService method names
const (
	MethodGetRollSession   = "GetRollSession"
	MethodClearRollSession = "ClearRollSession"
)

// CharacterCreationServer is the server API of the CharacterCreation service
type CharacterCreationServer interface {
	CreateDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateName(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectRace(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectClass(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectClassSkills(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectBackground(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectEquipmentOption(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetGenerationMethod(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetPointBuyScore(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignAbilitySlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RerollAbilityScores(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AdvanceStep(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RetreatStep(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FinalizeDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportCharacterSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRaces(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListClasses(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBackgrounds(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// DiceServer is the server API of the DiceService service
type DiceServer interface {
	GetRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// Messages travel as google.protobuf.Struct, so no descriptor file backs these
// services. Reflection lists them but cannot describe them.

// CharacterCreationServiceDesc is the grpc.ServiceDesc for CharacterCreation
var CharacterCreationServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterCreationServiceName,
	HandlerType: (*CharacterCreationServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CharacterCreationServiceName, MethodCreateDraft, CharacterCreationServer.CreateDraft),
		unary(CharacterCreationServiceName, MethodGetDraft, CharacterCreationServer.GetDraft),
		unary(CharacterCreationServiceName, MethodDeleteDraft, CharacterCreationServer.DeleteDraft),
		unary(CharacterCreationServiceName, MethodUpdateName, CharacterCreationServer.UpdateName),
		unary(CharacterCreationServiceName, MethodSelectRace, CharacterCreationServer.SelectRace),
		unary(CharacterCreationServiceName, MethodSelectClass, CharacterCreationServer.SelectClass),
		unary(CharacterCreationServiceName, MethodSelectClassSkills, CharacterCreationServer.SelectClassSkills),
		unary(CharacterCreationServiceName, MethodSelectBackground, CharacterCreationServer.SelectBackground),
		unary(CharacterCreationServiceName, MethodSelectEquipmentOption, CharacterCreationServer.SelectEquipmentOption),
		unary(CharacterCreationServiceName, MethodSetGenerationMethod, CharacterCreationServer.SetGenerationMethod),
		unary(CharacterCreationServiceName, MethodSetPointBuyScore, CharacterCreationServer.SetPointBuyScore),
		unary(CharacterCreationServiceName, MethodAssignAbilitySlot, CharacterCreationServer.AssignAbilitySlot),
		unary(CharacterCreationServiceName, MethodRerollAbilityScores, CharacterCreationServer.RerollAbilityScores),
		unary(CharacterCreationServiceName, MethodAdvanceStep, CharacterCreationServer.AdvanceStep),
		unary(CharacterCreationServiceName, MethodRetreatStep, CharacterCreationServer.RetreatStep),
		unary(CharacterCreationServiceName, MethodPreviewCharacter, CharacterCreationServer.PreviewCharacter),
		unary(CharacterCreationServiceName, MethodFinalizeDraft, CharacterCreationServer.FinalizeDraft),
		unary(CharacterCreationServiceName, MethodGetCharacter, CharacterCreationServer.GetCharacter),
		unary(CharacterCreationServiceName, MethodListCharacters, CharacterCreationServer.ListCharacters),
		unary(CharacterCreationServiceName, MethodDeleteCharacter, CharacterCreationServer.DeleteCharacter),
		unary(CharacterCreationServiceName, MethodExportCharacterSheet, CharacterCreationServer.ExportCharacterSheet),
		unary(CharacterCreationServiceName, MethodListRaces, CharacterCreationServer.ListRaces),
		unary(CharacterCreationServiceName, MethodListClasses, CharacterCreationServer.ListClasses),
		unary(CharacterCreationServiceName, MethodListBackgrounds, CharacterCreationServer.ListBackgrounds),
	},
	Streams: []grpc.StreamDesc{},
}

// DiceServiceDesc is the grpc.ServiceDesc for DiceService
var DiceServiceDesc = grpc.ServiceDesc{
	ServiceName: DiceServiceName,
	HandlerType: (*DiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(DiceServiceName, MethodGetRollSession, DiceServer.GetRollSession),
		unary(DiceServiceName, MethodClearRollSession, DiceServer.ClearRollSession),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterCharacterCreationServer registers srv on s
func RegisterCharacterCreationServer(s grpc.ServiceRegistrar, srv CharacterCreationServer) {
	s.RegisterService(&CharacterCreationServiceDesc, srv)
}

// RegisterDiceServer registers srv on s
func RegisterDiceServer(s grpc.ServiceRegistrar, srv DiceServer) {
	s.RegisterService(&DiceServiceDesc, srv)
}

func unary[S any](
	service, method string,
	call func(S, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
