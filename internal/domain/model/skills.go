package model

// SkillName identifies one of the player skill columns.
type SkillName string

// Graded skills, rated 0-99.
const (
	SkillAttack           SkillName = "attack"
	SkillDefense          SkillName = "defense"
	SkillBalance          SkillName = "balance"
	SkillStamina          SkillName = "stamina"
	SkillTopSpeed         SkillName = "top_speed"
	SkillAcceleration     SkillName = "acceleration"
	SkillResponse         SkillName = "response"
	SkillAgility          SkillName = "agility"
	SkillDribbleAccuracy  SkillName = "dribble_accuracy"
	SkillDribbleSpeed     SkillName = "dribble_speed"
	SkillShortPassAcc     SkillName = "short_pass_accuracy"
	SkillShortPassSpeed   SkillName = "short_pass_speed"
	SkillLongPassAcc      SkillName = "long_pass_accuracy"
	SkillLongPassSpeed    SkillName = "long_pass_speed"
	SkillShotAccuracy     SkillName = "shot_accuracy"
	SkillShotPower        SkillName = "shot_power"
	SkillShotTechnique    SkillName = "shot_technique"
	SkillFreeKickAcc      SkillName = "free_kick_accuracy"
	SkillSwerve           SkillName = "swerve"
	SkillHeading          SkillName = "heading"
	SkillJump             SkillName = "jump"
	SkillTechnique        SkillName = "technique"
	SkillAggression       SkillName = "aggression"
	SkillMentality        SkillName = "mentality"
	SkillGoalKeeping      SkillName = "goal_keeping"
	SkillTeamWork         SkillName = "team_work"
	SkillConsistency      SkillName = "consistency"
	SkillConditionFitness SkillName = "condition_fitness"
)

// Binary special abilities, 0 or 1.
const (
	SkillDribblingSkill   SkillName = "dribbling_skill"
	SkillTacticalDribble  SkillName = "tactical_dribble"
	SkillPositioning      SkillName = "positioning"
	SkillReaction         SkillName = "reaction"
	SkillPlaymaking       SkillName = "playmaking"
	SkillPassing          SkillName = "passing"
	SkillScoring          SkillName = "scoring"
	SkillOneOneScoring    SkillName = "one_one_scoring"
	SkillPostPlayer       SkillName = "post_player"
	SkillLines            SkillName = "lines"
	SkillMiddleShooting   SkillName = "middle_shooting"
	SkillSide             SkillName = "side"
	SkillCentre           SkillName = "centre"
	SkillPenalties        SkillName = "penalties"
	SkillOneTouchPass     SkillName = "one_touch_pass"
	SkillOutside          SkillName = "outside"
	SkillMarking          SkillName = "marking"
	SkillSliding          SkillName = "sliding"
	SkillCovering         SkillName = "covering"
	SkillDLineControl     SkillName = "d_line_control"
	SkillPenaltyStopper   SkillName = "penalty_stopper"
	SkillOneOnOneStopper  SkillName = "one_on_one_stopper"
	SkillLongThrow        SkillName = "long_throw"
)

// gradedSkills lists the 0-99 rated columns in schema order.
var gradedSkills = []SkillName{
	SkillAttack, SkillDefense, SkillBalance, SkillStamina, SkillTopSpeed,
	SkillAcceleration, SkillResponse, SkillAgility, SkillDribbleAccuracy,
	SkillDribbleSpeed, SkillShortPassAcc, SkillShortPassSpeed,
	SkillLongPassAcc, SkillLongPassSpeed, SkillShotAccuracy, SkillShotPower,
	SkillShotTechnique, SkillFreeKickAcc, SkillSwerve, SkillHeading,
	SkillJump, SkillTechnique, SkillAggression, SkillMentality,
	SkillGoalKeeping, SkillTeamWork, SkillConsistency, SkillConditionFitness,
}

// binarySkills lists the 0/1 special ability columns in schema order.
var binarySkills = []SkillName{
	SkillDribblingSkill, SkillTacticalDribble, SkillPositioning,
	SkillReaction, SkillPlaymaking, SkillPassing, SkillScoring,
	SkillOneOneScoring, SkillPostPlayer, SkillLines, SkillMiddleShooting,
	SkillSide, SkillCentre, SkillPenalties, SkillOneTouchPass, SkillOutside,
	SkillMarking, SkillSliding, SkillCovering, SkillDLineControl,
	SkillPenaltyStopper, SkillOneOnOneStopper, SkillLongThrow,
}

var binarySkillSet = func() map[SkillName]struct{} {
	m := make(map[SkillName]struct{}, len(binarySkills))
	for _, s := range binarySkills {
		m[s] = struct{}{}
	}
	return m
}()

// GradedSkills returns the 0-99 rated skill columns in schema order.
// The returned slice must not be mutated.
func GradedSkills() []SkillName { return gradedSkills }

// BinarySkills returns the 0/1 special ability columns in schema order.
// The returned slice must not be mutated.
func BinarySkills() []SkillName { return binarySkills }

// AllSkills returns every skill column, graded first, in schema order.
func AllSkills() []SkillName {
	out := make([]SkillName, 0, len(gradedSkills)+len(binarySkills))
	out = append(out, gradedSkills...)
	out = append(out, binarySkills...)
	return out
}

// IsBinarySkill reports whether the skill is a 0/1 special ability.
func IsBinarySkill(s SkillName) bool {
	_, ok := binarySkillSet[s]
	return ok
}

// SkillSet maps skill names to values. A missing key is the distinct
// "absent" state: absent skills are skipped by every aggregate, never
// coerced to zero.
type SkillSet map[SkillName]float64

// Get returns the value and whether it is present.
func (s SkillSet) Get(name SkillName) (float64, bool) {
	v, ok := s[name]
	return v, ok
}

// Set stores a value for the skill.
func (s SkillSet) Set(name SkillName, v float64) { s[name] = v }

// Clone returns a deep copy of the set.
func (s SkillSet) Clone() SkillSet {
	out := make(SkillSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// GradedMean returns the arithmetic mean of present graded skills.
// The second return is false when no graded skill is present.
func (s SkillSet) GradedMean() (float64, bool) {
	var sum float64
	var n int
	for _, name := range gradedSkills {
		if v, ok := s[name]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ClampSkill bounds a graded skill value to the playable 1-99 range.
func ClampSkill(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 99 {
		return 99
	}
	return v
}
