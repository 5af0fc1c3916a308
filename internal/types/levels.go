package types

// SkillLevel is the closed vocabulary for skill proficiency.
type SkillLevel string

// Skill proficiency tiers, lowest to highest.
const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// DefaultSkillLevel is the mid-tier value invalid or missing levels coerce to.
const DefaultSkillLevel = SkillIntermediate

// Valid reports whether l is a member of the skill level vocabulary.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// LanguageLevel is the closed vocabulary for spoken-language proficiency,
// following the ILR-style tiers used by professional-network exports.
type LanguageLevel string

// Language proficiency tiers, lowest to highest.
const (
	LangElementary          LanguageLevel = "elementary"
	LangLimitedWorking      LanguageLevel = "limited_working"
	LangProfessionalWorking LanguageLevel = "professional_working"
	LangFullProfessional    LanguageLevel = "full_professional"
	LangNative              LanguageLevel = "native"
)

// DefaultLanguageLevel is the mid-tier value invalid or missing levels coerce to.
const DefaultLanguageLevel = LangProfessionalWorking

// Valid reports whether l is a member of the language level vocabulary.
func (l LanguageLevel) Valid() bool {
	switch l {
	case LangElementary, LangLimitedWorking, LangProfessionalWorking, LangFullProfessional, LangNative:
		return true
	}
	return false
}
