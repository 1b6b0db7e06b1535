package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	apperrors "github.com/spec-kit/developer-service/pkg/util/errorutil"
)

func TestValidateExperienceYears(t *testing.T) {
	tests := []struct {
		name    string
		level   DeveloperLevel
		years   int
		wantErr bool
	}{
		{name: "junior lower bound", level: DeveloperLevelJunior, years: 0},
		{name: "junior upper bound", level: DeveloperLevelJunior, years: 4},
		{name: "junior too experienced", level: DeveloperLevelJunior, years: 5, wantErr: true},
		{name: "junior negative", level: DeveloperLevelJunior, years: -1, wantErr: true},
		{name: "mid lower bound overlaps junior", level: DeveloperLevelMid, years: 4},
		{name: "mid upper bound overlaps senior", level: DeveloperLevelMid, years: 10},
		{name: "mid too junior", level: DeveloperLevelMid, years: 3, wantErr: true},
		{name: "mid too senior", level: DeveloperLevelMid, years: 11, wantErr: true},
		{name: "senior lower bound", level: DeveloperLevelSenior, years: 10},
		{name: "senior twelve years", level: DeveloperLevelSenior, years: 12},
		{name: "senior unbounded", level: DeveloperLevelSenior, years: 70},
		{name: "senior five years", level: DeveloperLevelSenior, years: 5, wantErr: true},
		{name: "unknown level", level: DeveloperLevel("PRINCIPAL"), years: 20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExperienceYears(tt.level, tt.years)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, apperrors.CodeLevelExperienceMismatch))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateExperienceYears_Property(t *testing.T) {
	bounds := map[DeveloperLevel][2]int{
		DeveloperLevelJunior: {0, 4},
		DeveloperLevelMid:    {4, 10},
		DeveloperLevelSenior: {10, math.MaxInt},
	}

	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.SampledFrom(Levels()).Draw(rt, "level")
		years := rapid.IntRange(-50, 200).Draw(rt, "years")

		b := bounds[level]
		within := years >= b[0] && years <= b[1]

		err := ValidateExperienceYears(level, years)
		if within && err != nil {
			rt.Fatalf("ValidateExperienceYears(%s, %d) = %v, want nil", level, years, err)
		}
		if !within && !apperrors.HasCode(err, apperrors.CodeLevelExperienceMismatch) {
			rt.Fatalf("ValidateExperienceYears(%s, %d) = %v, want mismatch", level, years, err)
		}
	})
}

func TestParseDeveloperLevel(t *testing.T) {
	level, ok := ParseDeveloperLevel("jungnior")
	require.True(t, ok)
	assert.Equal(t, DeveloperLevelMid, level)

	level, ok = ParseDeveloperLevel(" senior ")
	require.True(t, ok)
	assert.Equal(t, DeveloperLevelSenior, level)

	_, ok = ParseDeveloperLevel("intern")
	assert.False(t, ok)
}

func TestDeveloperWithProfileLeavesOriginalUntouched(t *testing.T) {
	original := Developer{
		MemberID:           "member-1",
		Name:               "name",
		Age:                32,
		DeveloperLevel:     DeveloperLevelJunior,
		DeveloperSkillType: DeveloperSkillTypeBackEnd,
		ExperienceYears:    2,
		StatusCode:         StatusCodeEmployed,
	}

	updated := original.WithProfile(DeveloperProfile{
		DeveloperLevel:     DeveloperLevelSenior,
		DeveloperSkillType: DeveloperSkillTypeFrontEnd,
		ExperienceYears:    12,
	})

	assert.Equal(t, DeveloperLevelJunior, original.DeveloperLevel)
	assert.Equal(t, DeveloperLevelSenior, updated.DeveloperLevel)
	assert.Equal(t, DeveloperSkillTypeFrontEnd, updated.DeveloperSkillType)
	assert.Equal(t, 12, updated.ExperienceYears)
	assert.Equal(t, original.MemberID, updated.MemberID)
	assert.Equal(t, original.Name, updated.Name)
	assert.Equal(t, original.Age, updated.Age)

	retired := updated.Retired()
	assert.Equal(t, StatusCodeRetired, retired.StatusCode)
	assert.Equal(t, StatusCodeEmployed, updated.StatusCode)
	assert.Equal(t, RetiredDeveloper{MemberID: "member-1", Name: "name"}, retired.Archive())
}
