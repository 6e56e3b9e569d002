package diagnosis

import (
	"fmt"
	"strings"
)

const (
	defaultDisplayName   = "사용자"
	expertLabel          = "전문가"
	maxConversationRunes = 1000
)

func chatSystemPrompt(name string) string {
	return fmt.Sprintf(`당신은 경험이 풍부한 퍼스널컬러 전문가입니다. 다음 가이드라인을 따라 상담해주세요:

전문성과 친근함의 조화:
- 퍼스널컬러 전문 지식을 바탕으로 정확한 분석 제공
- 어려운 전문 용어는 쉽게 풀어서 설명
- 고객(%[1]s)이 편안하게 질문할 수 있도록 친근하고 따뜻한 톤 유지

감정 공감 기반 상담:
- 고객(%[1]s)의 고민과 니즈를 세심하게 파악
- 자신감 부족이나 스타일 고민에 공감하며 격려

실용적이고 개인화된 조언:
- 고객(%[1]s)의 라이프스타일, 직업, 선호도를 종합적으로 고려
- 구체적이고 실행 가능한 컬러 추천

자연스러운 대화 스타일:
- "어떠세요?", "~해보시는 건 어떨까요?" 같은 상담 톤
- 고객(%[1]s)이 궁금해할 점을 먼저 예상해서 설명`, name)
}

func chatUserPrompt(name, combinedQuery string, colorPassages, trendPassages []string) string {
	return fmt.Sprintf(`대화 맥락:
%[2]s

퍼스널컬러 전문 지식:
%[3]s

최신 트렌드 정보:
%[4]s

다음 가이드라인으로 상담해주세요:
1. 고객(%[1]s)의 질문에 대해 전문적이면서도 친근하게 응답
2. 필요시 퍼스널컬러 진단을 위한 추가 질문 (피부톤, 선호 스타일, 라이프스타일 등)
3. 대화 흐름에 맞는 자연스러운 컬러 추천
4. 실용적이고 구체적인 조언 제공

JSON 형식으로 응답해주세요:
{
    "primary_tone": "웜" 또는 "쿨",
    "sub_tone": "봄" 또는 "여름" 또는 "가을" 또는 "겨울",
    "description": "상세한 설명 텍스트 (자연스러운 대화체, 고객(%[1]s)을 직접 호명하며 안내)",
    "recommendations": ["구체적인 추천사항1", "구체적인 추천사항2", "구체적인 추천사항3"]
}

주의: recommendations는 반드시 문자열 배열이어야 합니다.`,
		name, combinedQuery, strings.Join(colorPassages, "\n"), strings.Join(trendPassages, "\n"))
}

func combinedQuery(question, history string) string {
	return fmt.Sprintf("현재 질문: %s\n\n이전 대화 맥락:\n%s", question, history)
}

const finalSystemPrompt = "당신은 퍼스널 컬러 전문가입니다. 사용자의 대화를 분석하여 정확하고 개인화된 진단 결과를 제공합니다."

func finalUserPrompt(conversation, season string) string {
	return fmt.Sprintf(`사용자와 퍼스널 컬러 전문가의 대화:
%[1]s

위 대화를 바탕으로 %[2]s 타입 퍼스널 컬러 진단 결과를 생성해주세요.

다음 JSON 형식으로만 응답해주세요 (다른 설명 없이):
{
    "emotional_description": "감성적이고 긍정적인 한 문장 (예: 당신은 따뜻하고 생기 넘치는 %[2]s 타입입니다!)",
    "color_palette": ["%[2]s 타입에 어울리는 5개의 HEX 색상 코드"],
    "style_keywords": ["%[2]s 타입의 특성을 나타내는 5개 키워드"],
    "makeup_tips": ["실용적인 메이크업 팁 4개"],
    "detailed_analysis": "대화 내용을 반영한 개인화된 분석 (2-3문단, 구체적이고 실용적인 조언 포함)",
    "recommendations": ["구체적인 추천사항 3개"]
}

주의사항:
- detailed_analysis는 반복적인 내용 없이 개인화된 분석으로 작성
- 대화에서 언급된 개인적 특성을 반영
- 실용적이고 구체적인 조언 포함
- 한국어로 작성`, conversation, season)
}

// truncateConversation caps the conversation at maxConversationRunes characters.
func truncateConversation(text string) string {
	runes := []rune(text)
	if len(runes) <= maxConversationRunes {
		return text
	}
	return string(runes[:maxConversationRunes]) + "...(생략)"
}

const surveySystemPrompt = "당신은 전문적인 퍼스널 컬러 진단 컨설턴트입니다. " +
	"사용자의 답변을 기반으로 가장 적합한 퍼스널 컬러 타입을 정확하게 진단해주세요. " +
	"봄, 여름, 가을, 겨울 중 정확히 하나의 타입만 선택해야 하며, " +
	"진단 신뢰도와 종합 점수를 객관적으로 평가해주세요."

func surveyUserPrompt(answers string, colorPassages, trendPassages []string) string {
	var ctx strings.Builder
	if len(colorPassages) > 0 {
		ctx.WriteString("\n\n[퍼스널 컬러 참고 정보]\n")
		ctx.WriteString(strings.Join(colorPassages, "\n"))
	}
	if len(trendPassages) > 0 {
		ctx.WriteString("\n\n[최신 뷰티 트렌드]\n")
		ctx.WriteString(strings.Join(trendPassages, "\n"))
	}

	return fmt.Sprintf(`사용자의 퍼스널 컬러 테스트 답변:

%s%s

이 답변들을 기반으로 사용자의 퍼스널 컬러 타입을 분석하세요.

반드시 다음 가이드라인을 따라주세요:
- 메인 타입 1개와 추천 타입 2개로 총 3개의 타입을 제공해주세요
- 각 타입의 description은 문학적이고 감성적으로 작성해주세요
- name은 이모지와 함께 일관된 형식으로 작성해주세요 (예: '봄 웜톤 🌸')

분석 결과는 다음 형식으로 JSON으로 반드시 응답해주세요:
{
    "result_tone": "spring|summer|autumn|winter 중 정확히 하나",
    "confidence": 0-100 사이의 숫자,
    "total_score": 0-100 사이의 숫자,
    "detailed_analysis": "사용자의 답변을 기반으로 한 자세한 분석 설명 (200-400자 정도)",
    "recommendations": ["구체적인 추천사항 3개"],
    "top_types": [
        {
            "type": "spring|summer|autumn|winter",
            "name": "퍼스널 컬러 타입명 (반드시 '봄 웜톤 🌸' 형식)",
            "description": "타입의 특성을 문학적이고 감성적으로 표현한 설명 (30-50자)",
            "color_palette": ["색상 코드 5개"],
            "style_keywords": ["키워드 5개"],
            "makeup_tips": ["메이크업 팁 4개"],
            "score": 0-100
        }
    ]
}

응답은 반드시 JSON 형식만 포함해야 합니다. 다른 설명은 포함하지 마세요.`, answers, ctx.String())
}

const emotionSystemPrompt = "너는 감정 분석 전문가야. 사용자 발화의 감정을 분류해줘."

func emotionUserPrompt(text string) string {
	return fmt.Sprintf(`다음 사용자 발화의 감정을 분류하세요. 아래 중 하나로만 답하세요:
smile, sad, angry, love, no, wink
발화: "%s"
감정 (위 목록 중 하나):`, text)
}
