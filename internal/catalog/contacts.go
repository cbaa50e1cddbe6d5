package catalog

// Contact is one dialable entry in the emergency directory.
type Contact struct {
	Service string `json:"service"`
	Number  string `json:"number"`
	Note    string `json:"note,omitempty"`
}

// ContactGroup bundles related contacts under a heading.
type ContactGroup struct {
	Title    string    `json:"title"`
	Contacts []Contact `json:"contacts"`
}

var contactGroups = []ContactGroup{
	{
		Title: "Immediate emergency",
		Contacts: []Contact{
			{Service: "Emergency (police, fire, ambulance)", Number: "911"},
			{Service: "Suicide & Crisis Lifeline", Number: "988", Note: "call or text, 24/7"},
			{Service: "Poison Control", Number: "1-800-222-1222"},
		},
	},
	{
		Title: "Medicare",
		Contacts: []Contact{
			{Service: "Medicare helpline", Number: "1-800-633-4227", Note: "1-800-MEDICARE, 24/7"},
			{Service: "Medicare TTY", Number: "1-877-486-2048"},
			{Service: "Social Security Administration", Number: "1-800-772-1213"},
		},
	},
	{
		Title: "Transport and support",
		Contacts: []Contact{
			{Service: "Community services referral", Number: "211", Note: "non-emergency transport, housing, meals"},
			{Service: "Eldercare Locator", Number: "1-800-677-1116"},
		},
	},
}

// EmergencyContacts returns a copy of the contact directory.
func EmergencyContacts() []ContactGroup {
	out := make([]ContactGroup, len(contactGroups))
	for i, g := range contactGroups {
		out[i] = ContactGroup{
			Title:    g.Title,
			Contacts: append([]Contact(nil), g.Contacts...),
		}
	}
	return out
}
