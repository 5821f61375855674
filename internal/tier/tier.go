package tier

import "errors"

var (
	ErrTrackNotAllowed      = errors.New("track not available on this plan")
	ErrQuotaExceeded        = errors.New("daily question limit reached")
	ErrSimulatorDenied      = errors.New("exam simulator not available on this plan")
	ErrAnalyticsDenied      = errors.New("analytics not available on this plan")
	ErrCustomPracticeDenied = errors.New("custom practice not available on this plan")
)

// Subscription is a user's plan. Unknown values fall back to guest limits.
type Subscription string

const (
	Guest    Subscription = "guest"
	Free     Subscription = "free"
	Pro      Subscription = "pro"
	Lifetime Subscription = "lifetime"
)

// User is the nullable record supplied by the external auth stub. The core
// never authenticates; it only reads the tier off whatever it is handed.
type User struct {
	ID             string       `json:"id,omitempty"`
	Email          string       `json:"email,omitempty"`
	Subscription   Subscription `json:"subscription"`
	QuestionsToday int          `json:"questionsToday,omitempty"`
}

// Limits enumerates what a subscription tier may do.
// DailyQuestions of -1 means unlimited.
type Limits struct {
	DailyQuestions int
	TrackAccess    []string
	ExamSimulator  bool
	Analytics      bool
	Explanations   bool
	CustomPractice bool
}

var limitsBySubscription = map[Subscription]Limits{
	Guest: {
		DailyQuestions: 5,
		TrackAccess:    []string{"aws-cp"},
	},
	Free: {
		DailyQuestions: 20,
		TrackAccess:    []string{"aws-cp", "aws-saa"},
		Analytics:      true,
		Explanations:   true,
		CustomPractice: true,
	},
	Pro: {
		DailyQuestions: 100,
		TrackAccess:    []string{"aws-cp", "aws-saa", "aws-devops"},
		ExamSimulator:  true,
		Analytics:      true,
		Explanations:   true,
		CustomPractice: true,
	},
	Lifetime: {
		DailyQuestions: -1,
		TrackAccess:    []string{"aws-cp", "aws-saa", "aws-devops", "k8s-cka"},
		ExamSimulator:  true,
		Analytics:      true,
		Explanations:   true,
		CustomPractice: true,
	},
}

// LimitsFor returns the limits for a user. A nil user is a guest.
func LimitsFor(user *User) Limits {
	if user == nil {
		return limitsBySubscription[Guest]
	}
	limits, ok := limitsBySubscription[user.Subscription]
	if !ok {
		return limitsBySubscription[Guest]
	}
	return limits
}

// CanAccessTrack reports whether the user's plan includes the given track.
func CanAccessTrack(user *User, trackID string) bool {
	for _, id := range LimitsFor(user).TrackAccess {
		if id == trackID {
			return true
		}
	}
	return false
}

// RemainingQuestions returns how many questions the user may still answer
// today, or -1 for unlimited plans.
func RemainingQuestions(user *User) int {
	limits := LimitsFor(user)
	if limits.DailyQuestions == -1 {
		return -1
	}
	used := 0
	if user != nil {
		used = user.QuestionsToday
	}
	remaining := limits.DailyQuestions - used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CheckSessionStart is the gate applied before any session is created.
// It rejects the request when the plan denies the track, the exam
// simulator, or when the requested count exceeds today's remaining quota.
func CheckSessionStart(user *User, trackID string, count int, examSimulator bool) error {
	if !CanAccessTrack(user, trackID) {
		return ErrTrackNotAllowed
	}
	if examSimulator && !LimitsFor(user).ExamSimulator {
		return ErrSimulatorDenied
	}
	if remaining := RemainingQuestions(user); remaining != -1 && count > remaining {
		return ErrQuotaExceeded
	}
	return nil
}

// CanViewAnalytics reports whether the plan includes the analytics view.
func CanViewAnalytics(user *User) bool {
	return LimitsFor(user).Analytics
}

// CanCustomPractice reports whether the plan may configure its own practice
// sessions. Guests get the curated free quiz only.
func CanCustomPractice(user *User) bool {
	return LimitsFor(user).CustomPractice
}

// CanViewExplanations reports whether explanations may be revealed.
func CanViewExplanations(user *User) bool {
	return LimitsFor(user).Explanations
}
