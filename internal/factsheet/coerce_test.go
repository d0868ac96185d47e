package factsheet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presscraft/internal/entity"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", input: "다음은 결과입니다:\n{\"a\":1}\n감사합니다.", want: `{"a":1}`},
		{name: "no object", input: "할당량 초과", want: "할당량 초과"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.input))
		})
	}
}

func TestParse_CoercesLooseTypes(t *testing.T) {
	content := "```json\n" + `{
  "brandName": "데스커",
  "productName": "모션데스크",
  "definition": null,
  "features": "전동 높이 조절",
  "coreMessages": ["몰입", 2024, null],
  "launchDate": 20240315,
  "discountPromo": ["10% 할인", "사은품"],
  "channels": true
}` + "\n```"

	fs, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "데스커", fs.BrandName)
	assert.Equal(t, "모션데스크", fs.ProductName)
	assert.Equal(t, "", fs.Definition)
	assert.Equal(t, []string{}, fs.Features)
	assert.Equal(t, []string{"몰입", "2024"}, fs.CoreMessages)
	assert.Equal(t, "20240315", fs.LaunchDate)
	assert.Equal(t, "10% 할인, 사은품", fs.DiscountPromo)
	assert.Equal(t, "true", fs.Channels)
	assert.Equal(t, entity.PrType(""), fs.PrType)
}

func TestParse_ListsEncodeAsEmptyArrays(t *testing.T) {
	fs, err := Parse(`{"brandName":"데스커"}`)
	require.NoError(t, err)

	b, err := json.Marshal(fs)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"features":[]`)
	assert.Contains(t, string(b), `"coreMessages":[]`)
}

func TestParse_PrTypeAlias(t *testing.T) {
	fs, err := Parse(`{"prType":"activity"}`)
	require.NoError(t, err)
	assert.Equal(t, entity.PrTypeIssue, fs.PrType)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("죄송합니다. 요청을 처리할 수 없습니다.")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	fs := Normalize(entity.FactSheet{})
	assert.NotNil(t, fs.Features)
	assert.NotNil(t, fs.CoreMessages)
}
