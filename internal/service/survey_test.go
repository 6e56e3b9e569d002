package service_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/service"
	"personalcolor-ai/internal/service/mocks"
	"personalcolor-ai/internal/tone"
)

func answers() []diagnosis.SurveyAnswer {
	return []diagnosis.SurveyAnswer{
		{QuestionID: 1, OptionID: "a", OptionLabel: "골드 액세서리가 어울려요"},
		{QuestionID: 2, OptionID: "c", OptionLabel: "브라운 계열을 자주 입어요"},
	}
}

func autumnDiagnosis() *diagnosis.Diagnosis {
	return &diagnosis.Diagnosis{
		PrimaryTone:     tone.Warm,
		SubSeason:       tone.Autumn,
		Name:            "가을 웜톤 🍂",
		Description:     "깊고 따뜻한 가을",
		Recommendations: []string{"카멜 코트"},
		Confidence:      80,
		TotalScore:      78,
		TopTypes: []diagnosis.TopType{
			{Type: tone.Autumn, Name: "가을 웜톤 🍂", Score: 78},
			{Type: tone.Spring, Name: "봄 웜톤 🌸", Score: 60},
		},
	}
}

func TestSurveyService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newStore(t)
	diagnoser := mocks.NewMockDiagnoser(ctrl)
	svc := service.NewSurveyService(store, diagnoser)
	ctx := testContext()

	diagnoser.EXPECT().DiagnoseSurvey(gomock.Any(), answers()).Return(autumnDiagnosis())

	rec, err := svc.Submit(ctx, "user-1", answers())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if rec.ID == "" || rec.SourceType != diagnosis.SourceSurvey || rec.SessionID != 0 {
		t.Errorf("Submit() = %+v", rec)
	}

	list, err := svc.List(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != rec.ID {
		t.Errorf("List() = %+v", list)
	}

	res, err := svc.Report(ctx, "user-1", rec.ID)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if res.Report.Conversation != nil {
		t.Error("survey report should have no conversation section")
	}
	if len(res.Report.TopTypes) != 2 || res.HTML == "" {
		t.Errorf("Report() = %+v", res.Report)
	}

	if _, err := svc.Report(ctx, "user-2", rec.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Report() for another user error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Report(ctx, "user-1", "missing"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Report() for missing id error = %v, want ErrNotFound", err)
	}
}

func TestSurveyService_Submit_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSurveyService(newStore(t), mocks.NewMockDiagnoser(ctrl))

	tests := []struct {
		name      string
		userID    string
		answers   []diagnosis.SurveyAnswer
		wantField string
	}{
		{name: "missing user", userID: "", answers: answers(), wantField: "user_id"},
		{name: "no answers", userID: "u", answers: nil, wantField: "answers"},
		{
			name:      "non-positive question id",
			userID:    "u",
			answers:   []diagnosis.SurveyAnswer{{QuestionID: 0, OptionLabel: "x"}},
			wantField: "answers[0].question_id",
		},
		{
			name:      "duplicate question",
			userID:    "u",
			answers:   []diagnosis.SurveyAnswer{{QuestionID: 1, OptionLabel: "x"}, {QuestionID: 1, OptionLabel: "y"}},
			wantField: "answers[1].question_id",
		},
		{
			name:      "blank label",
			userID:    "u",
			answers:   []diagnosis.SurveyAnswer{{QuestionID: 1, OptionLabel: "  "}},
			wantField: "answers[0].option_label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(testContext(), tt.userID, tt.answers)
			var ve *service.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantField {
				t.Errorf("Submit() error = %v, want ValidationError on %s", err, tt.wantField)
			}
			if !errors.Is(err, service.ErrInvalidInput) {
				t.Error("validation errors should match ErrInvalidInput")
			}
		})
	}
}

func TestSurveyService_ReportForChatbotDiagnosis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newStore(t)
	diagnoser := mocks.NewMockDiagnoser(ctrl)
	chat := service.NewChatService(store, diagnoser, 6)
	surveys := service.NewSurveyService(store, diagnoser)
	ctx := testContext()

	sess, err := store.CreateSession(ctx, "user-1")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if _, err := store.SaveConversationTurn(ctx, sess.ID, diagnosis.RoleUser, "라벤더가 좋아요", ""); err != nil {
		t.Fatalf("SaveConversationTurn() error = %v", err)
	}
	diagnoser.EXPECT().DiagnoseConversation(gomock.Any(), gomock.Any()).Return(summerDiagnosis())

	ended, err := chat.EndSession(ctx, "user-1", sess.ID)
	if err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}

	res, err := surveys.Report(ctx, "user-1", ended.Diagnosis.ID)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if res.Report.Conversation == nil || res.Report.Conversation.UserTurns != 1 {
		t.Errorf("Conversation = %+v, want one user turn", res.Report.Conversation)
	}
}
