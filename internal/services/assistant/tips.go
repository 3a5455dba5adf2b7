package assistant

// careTips is the fixed pool the tip rule draws from. Order matters only
// to tests that pin the picker.
var careTips = []string{
	"Regular exercise keeps pets healthy and happy. Aim for at least 30 minutes of activity a day.",
	"Fresh water should always be available. Change it at least once a day.",
	"Keep a consistent feeding schedule. Pets thrive on routine.",
	"Regular vet checkups catch health problems early. Book one at least once a year.",
	"Mental stimulation matters as much as physical exercise. Rotate toys and try short training sessions.",
}
