package diagnosis

import "personalcolor-ai/internal/tone"

// Profile is the short per-season card used in survey rankings.
type Profile struct {
	Name          string
	Description   string
	ColorPalette  []string
	StyleKeywords []string
	MakeupTips    []string
}

// Narrative is the long-form per-season text used when a conversation diagnosis
// cannot be generated.
type Narrative struct {
	EmotionalDescription string
	ColorPalette         []string
	StyleKeywords        []string
	MakeupTips           []string
	DetailedAnalysis     string
	Recommendations      []string
}

var profiles = map[tone.Season]Profile{
	tone.Spring: {
		Name:          "봄 웜톤 🌸",
		Description:   "밝고 생기 있는 봄날의 따뜻함을 담은 당신",
		ColorPalette:  []string{"#FF6F61", "#FFD1B3", "#FFE5B4", "#98FB98", "#40E0D0"},
		StyleKeywords: []string{"화사함", "발랄함", "생동감", "밝음", "따뜻함"},
		MakeupTips:    []string{"코럴 블러셔", "피치 립", "골든 아이섀도우", "브라운 마스카라"},
	},
	tone.Summer: {
		Name:          "여름 쿨톤 💎",
		Description:   "시원하고 우아한 여름날의 세련됨을 담은 당신",
		ColorPalette:  []string{"#F8BBD9", "#E6E6FA", "#ADD8E6", "#DDA0DD", "#D3D3D3"},
		StyleKeywords: []string{"차분함", "세련됨", "우아함", "로맨틱", "부드러움"},
		MakeupTips:    []string{"로즈 블러셔", "더스티핑크 립", "라벤더 아이섀도우", "브라운 마스카라"},
	},
	tone.Autumn: {
		Name:          "가을 웜톤 🍂",
		Description:   "깊고 따뜻한 가을날의 포근함을 담은 당신",
		ColorPalette:  []string{"#800020", "#8B7355", "#FFD700", "#FF4500", "#556B2F"},
		StyleKeywords: []string{"따뜻함", "성숙함", "깊이", "풍성함", "고급스러움"},
		MakeupTips:    []string{"오렌지 블러셔", "브릭레드 립", "골든브라운 아이섀도우", "브라운 마스카라"},
	},
	tone.Winter: {
		Name:          "겨울 쿨톤 ❄️",
		Description:   "시원하고 강렬한 겨울날의 우아함을 담은 당신",
		ColorPalette:  []string{"#000000", "#FFFFFF", "#4169E1", "#FF1493", "#DC143C"},
		StyleKeywords: []string{"강렬함", "고급스러움", "시크함", "도시적", "명확함"},
		MakeupTips:    []string{"푸시아 블러셔", "트루레드 립", "스모키 아이섀도우", "블랙 마스카라"},
	},
}

var narratives = map[tone.Season]Narrative{
	tone.Spring: {
		EmotionalDescription: "생기 넘치고 화사한 당신은 봄 웜톤 타입입니다! 밝고 따뜻한 색상이 자연스럽게 어울리는 매력적인 분이에요.",
		ColorPalette:         []string{"#FFB6C1", "#FFA07A", "#FFFF99", "#98FB98", "#87CEEB"},
		StyleKeywords:        []string{"밝은", "화사한", "생동감 있는", "따뜻한", "자연스러운"},
		MakeupTips:           []string{"코랄 계열 립스틱으로 생기 연출", "피치 블러셔로 자연스러운 홍조", "골드 아이섀도로 따뜻한 눈매", "브라운 마스카라로 부드러운 눈매"},
		DetailedAnalysis: "봄 웜톤 타입인 당신은 따뜻하고 밝은 색상이 가장 잘 어울리는 타입입니다.\n\n" +
			"평소 밝고 경쾌한 인상을 주는 당신에게는 코랄, 피치, 아이보리 계열의 색상이 피부톤을 더욱 생동감 있게 만들어 줍니다. " +
			"메이크업 시에는 너무 진하거나 쿨톤 계열보다는 자연스럽고 따뜻한 느낌의 색상을 선택하시면 더욱 매력적인 모습을 연출할 수 있어요.\n\n" +
			"패션에서도 화이트, 크림, 코랄, 연두색 등을 활용하시면 활기찬 당신의 매력을 한층 더 돋보이게 할 수 있습니다.",
		Recommendations: []string{
			"코랄, 피치, 아이보리 계열 상의를 얼굴 가까이에 매치해 보세요.",
			"골드 톤 액세서리로 밝은 인상을 살려 보세요.",
			"무겁고 탁한 색보다는 맑고 가벼운 색을 선택해 보세요.",
		},
	},
	tone.Summer: {
		EmotionalDescription: "시원하고 우아한 당신은 여름 쿨톤 타입입니다! 부드럽고 세련된 색상이 당신의 우아함을 더욱 빛나게 해줍니다.",
		ColorPalette:         []string{"#E6E6FA", "#B0C4DE", "#FFC0CB", "#DDA0DD", "#F0F8FF"},
		StyleKeywords:        []string{"부드러운", "우아한", "세련된", "시원한", "파스텔"},
		MakeupTips:           []string{"로즈 핑크 립으로 상쾌한 인상", "라벤더 아이섀도로 몽환적 눈매", "실버 하이라이터로 투명한 윤기", "애쉬 브라운 아이브로우로 부드러운 인상"},
		DetailedAnalysis: "여름 쿨톤 타입인 당신은 차가운 계열의 부드러운 색상이 가장 잘 어울리는 우아한 타입입니다.\n\n" +
			"당신의 피부톤에는 로즈, 라벤더, 민트, 스카이블루 등의 파스텔 계열 색상이 완벽하게 조화를 이룹니다. " +
			"메이크업 시에는 너무 강렬하거나 따뜻한 톤보다는 쿨하고 부드러운 색상을 선택하시면 자연스럽게 세련된 분위기를 연출할 수 있어요.\n\n" +
			"의상 선택 시에도 화이트, 실버, 네이비, 그레이 계열을 기본으로 하여 포인트 색상으로 파스텔 톤을 활용하시면 우아하면서도 현대적인 매력을 표현할 수 있습니다.",
		Recommendations: []string{
			"라벤더, 로즈, 스카이블루 같은 파스텔 컬러를 활용해 보세요.",
			"실버 액세서리로 맑고 깨끗한 인상을 더해 보세요.",
			"채도가 너무 높은 색보다는 회색빛이 살짝 섞인 부드러운 색을 골라 보세요.",
		},
	},
	tone.Autumn: {
		EmotionalDescription: "깊이 있고 세련된 당신은 가을 웜톤 타입입니다! 진하고 따뜻한 색상이 당신의 성숙한 매력을 완벽하게 표현해줍니다.",
		ColorPalette:         []string{"#D2691E", "#CD853F", "#DEB887", "#BC8F8F", "#F4A460"},
		StyleKeywords:        []string{"깊은", "세련된", "따뜻한", "성숙한", "클래식"},
		MakeupTips:           []string{"브라운 계열 립으로 지적인 인상", "골드 브론즈 아이섀도로 깊은 눈매", "따뜻한 오렌지 블러셔", "다크 브라운 마스카라로 강조된 속눈썹"},
		DetailedAnalysis: "가을 웜톤 타입인 당신은 깊이 있고 풍부한 색상이 가장 잘 어울리는 성숙하고 세련된 타입입니다.\n\n" +
			"당신의 피부톤에는 머스타드, 브릭, 올리브, 버건디 등의 깊고 따뜻한 색상들이 자연스럽게 조화를 이룹니다. " +
			"메이크업에서는 베이지, 브라운, 골드 계열을 활용하여 자연스러우면서도 세련된 분위기를 연출할 수 있어요.\n\n" +
			"패션에서는 카멜, 베이지, 브라운, 와인 컬러 등을 기본으로 하여 포인트 색상으로 머스타드나 올리브 그린을 활용하시면 클래식하면서도 트렌디한 스타일을 완성할 수 있습니다.",
		Recommendations: []string{
			"카멜, 브라운, 올리브 계열 아이템을 기본으로 구성해 보세요.",
			"골드나 브론즈 액세서리로 깊이감을 더해 보세요.",
			"머스타드나 버건디를 포인트 컬러로 활용해 보세요.",
		},
	},
	tone.Winter: {
		EmotionalDescription: "명확하고 강렬한 당신은 겨울 쿨톤 타입입니다! 선명하고 드라마틱한 색상이 당신의 카리스마를 한층 더 돋보이게 합니다.",
		ColorPalette:         []string{"#FF1493", "#4169E1", "#000000", "#FFFFFF", "#8A2BE2"},
		StyleKeywords:        []string{"명확한", "강렬한", "선명한", "드라마틱", "모던"},
		MakeupTips:           []string{"레드 립스틱으로 강렬한 포인트", "실버 아이섀도로 신비로운 눈매", "블랙 아이라이너로 또렷한 눈매", "볼드한 컨투어링으로 입체감"},
		DetailedAnalysis: "겨울 쿨톤 타입인 당신은 선명하고 강렬한 색상이 가장 잘 어울리는 드라마틱하고 모던한 타입입니다.\n\n" +
			"당신의 피부톤에는 퓨어 화이트, 블랙, 로얄 블루, 에메랄드 그린 등의 선명하고 차가운 색상들이 완벽하게 어울립니다. " +
			"메이크업에서는 명확한 컬러 대비를 활용하여 시크하고 세련된 이미지를 연출할 수 있어요.\n\n" +
			"의상 선택 시에도 블랙, 화이트, 그레이를 베이스로 하여 포인트 색상으로 비비드한 컬러를 활용하시면 당신만의 독특하고 강인한 매력을 표현할 수 있습니다.",
		Recommendations: []string{
			"블랙과 화이트처럼 대비가 분명한 조합을 시도해 보세요.",
			"로얄 블루, 푸시아 같은 선명한 컬러로 포인트를 주세요.",
			"실버나 화이트 골드 액세서리로 시크한 분위기를 완성해 보세요.",
		},
	},
}

// ProfileFor returns the survey profile of a season, defaulting to spring.
func ProfileFor(s tone.Season) Profile {
	if p, ok := profiles[s]; ok {
		return p
	}
	return profiles[tone.Spring]
}

// NarrativeFor returns the fallback narrative of a season, defaulting to spring.
func NarrativeFor(s tone.Season) Narrative {
	if n, ok := narratives[s]; ok {
		return n
	}
	return narratives[tone.Spring]
}

// Fallback replies used when a chat turn's model output cannot be parsed.
const greeting = "안녕하세요! 퍼스널컬러 전문가입니다. 어떤 컬러나 스타일에 대해 궁금한 점이 있으신가요? " +
	"피부톤, 좋아하는 색깔, 평소 스타일 등 어떤 것이든 편하게 말씀해주세요!"

var (
	unparsedRecommendations = []string{
		"더 자세한 정보를 위해 피부톤이나 선호하는 색깔에 대해 말씀해주세요.",
		"평소 어떤 스타일을 좋아하시는지 알려주시면 더 정확한 분석을 도와드릴게요.",
		"궁금한 컬러나 스타일에 대해 언제든 물어보세요!",
	}
	proseRecommendations = []string{
		"피부톤이나 혈관 색깔에 대해 알려주세요.",
		"평소 어떤 색깔 옷을 즐겨 입으시는지 말씀해주세요.",
		"메이크업이나 헤어 컬러 관련해서도 도움드릴 수 있어요.",
	}
)

// cloneStrings copies a template slice so callers may mutate results freely.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
