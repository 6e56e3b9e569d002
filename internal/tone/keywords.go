package tone

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordTable holds the six keyword sets matched by the classifier.
type KeywordTable struct {
	Warm   []string `yaml:"warm"`
	Cool   []string `yaml:"cool"`
	Spring []string `yaml:"spring"`
	Summer []string `yaml:"summer"`
	Autumn []string `yaml:"autumn"`
	Winter []string `yaml:"winter"`
}

// DefaultKeywords returns the built-in keyword table.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		Warm: []string{
			"따뜻", "웜", "노란", "노랑", "골드", "금색", "황금", "코랄", "피치", "오렌지",
			"주황", "베이지", "카멜", "브라운", "갈색", "초록 혈관", "녹색 혈관", "태닝",
			"warm", "gold", "coral", "peach", "orange", "camel",
		},
		Cool: []string{
			"차가", "차갑", "시원", "쿨", "실버", "은색", "푸른", "파란", "파랑", "블루",
			"라벤더", "퍼플", "보라", "그레이", "회색", "블랙", "화이트", "푸른 혈관", "붉어",
			"cool", "silver", "blue", "lavender", "purple",
		},
		Spring: []string{
			"봄", "코랄", "피치", "살구", "밝은", "화사", "생기", "발랄", "맑은", "아이보리",
			"연두", "spring", "coral", "peach", "apricot",
		},
		Summer: []string{
			"여름", "라벤더", "파스텔", "로즈", "소프트", "부드러운", "뮤트", "하늘색",
			"연보라", "물빛", "summer", "pastel", "rose",
		},
		Autumn: []string{
			"가을", "브라운", "카키", "머스타드", "버건디", "테라코타", "카멜", "올리브",
			"깊은", "차분", "벽돌", "autumn", "fall", "khaki", "mustard", "olive",
		},
		Winter: []string{
			"겨울", "블랙", "화이트", "선명", "비비드", "쨍한", "대비", "와인", "네이비",
			"푸시아", "winter", "vivid", "navy", "fuchsia",
		},
	}
}

// LoadKeywordTable reads a YAML keyword table. Sets missing from the file keep
// their built-in defaults.
func LoadKeywordTable(path string) (KeywordTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeywordTable{}, fmt.Errorf("failed to read keyword table: %w", err)
	}

	var file KeywordTable
	if err := yaml.Unmarshal(data, &file); err != nil {
		return KeywordTable{}, fmt.Errorf("failed to parse keyword table %s: %w", path, err)
	}

	table := DefaultKeywords()
	override := func(dst *[]string, src []string) {
		if src != nil {
			*dst = src
		}
	}
	override(&table.Warm, file.Warm)
	override(&table.Cool, file.Cool)
	override(&table.Spring, file.Spring)
	override(&table.Summer, file.Summer)
	override(&table.Autumn, file.Autumn)
	override(&table.Winter, file.Winter)

	return table, nil
}
