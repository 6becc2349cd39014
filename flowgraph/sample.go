package flowgraph

// SampleSnapshot returns a deterministic entity snapshot for demos and
// tests: four departments, six employees, the four standard document
// types, and a handful of documents in various signing states.
func SampleSnapshot() *Snapshot {
	return &Snapshot{
		Departments: []Department{
			{
				Name:         "Finance",
				Head:         "Maria Ivanova",
				Level:        1,
				CanSignTypes: []string{"invoice", "receipt"},
			},
			{
				Name:         "Legal",
				Head:         "Sergey Petrov",
				Level:        1,
				CanSignTypes: []string{"contract", "act"},
			},
			{
				Name:         "Procurement",
				Head:         "Anna Sidorova",
				Level:        2,
				CanSignTypes: []string{"invoice", "contract"},
			},
			{
				Name:         "Executive Office",
				Head:         "Alexander Smirnov",
				Level:        0,
				CanSignTypes: []string{"invoice", "contract", "act", "receipt"},
			},
		},
		Employees: []Employee{
			{
				Name:          "Maria Ivanova",
				Department:    "Finance",
				Position:      "Head of Finance",
				CanSign:       true,
				MaxSignAmount: 500000,
			},
			{
				Name:          "Sergey Petrov",
				Department:    "Legal",
				Position:      "Head of Legal",
				CanSign:       true,
				MaxSignAmount: 1000000,
			},
			{
				Name:          "Anna Sidorova",
				Department:    "Procurement",
				Position:      "Head of Procurement",
				CanSign:       true,
				MaxSignAmount: 300000,
			},
			{
				Name:          "Alexander Smirnov",
				Department:    "Executive Office",
				Position:      "Chief Executive",
				CanSign:       true,
				MaxSignAmount: 0, // unlimited
			},
			{
				Name:       "Dmitry Kozlov",
				Department: "Finance",
				Position:   "Accountant",
			},
			{
				Name:       "Elena Novikova",
				Department: "Procurement",
				Position:   "Procurement Specialist",
			},
		},
		DocumentTypes: []DocumentType{
			{
				Code:               "invoice",
				Description:        "Invoice",
				RequiredSignatures: 2,
				ApprovalChain:      []string{"Finance", "Executive Office"},
			},
			{
				Code:               "contract",
				Description:        "Contract",
				RequiredSignatures: 3,
				ApprovalChain:      []string{"Legal", "Procurement", "Executive Office"},
			},
			{
				Code:               "act",
				Description:        "Acceptance act",
				RequiredSignatures: 2,
				ApprovalChain:      []string{"Legal", "Finance"},
			},
			{
				Code:               "receipt",
				Description:        "Receipt",
				RequiredSignatures: 1,
				ApprovalChain:      []string{"Finance"},
			},
		},
		Documents: []Document{
			{
				Number:     "INV-2024-0001",
				Type:       "invoice",
				Author:     "Dmitry Kozlov",
				Department: "Finance",
				IssueDate:  "2024-03-01",
				Amount:     150000,
				SignedBy:   []string{"Maria Ivanova"},
				Status:     "pending",
			},
			{
				Number:     "CTR-2024-0002",
				Type:       "contract",
				Author:     "Elena Novikova",
				Department: "Procurement",
				IssueDate:  "2024-03-05",
				Amount:     750000,
				Status:     "draft",
			},
			{
				Number:     "ACT-2024-0003",
				Type:       "act",
				Author:     "Sergey Petrov",
				Department: "Legal",
				IssueDate:  "2024-02-20",
				Amount:     40000,
				SignedBy:   []string{"Sergey Petrov", "Maria Ivanova"},
				Status:     "approved",
			},
			{
				Number:     "RCP-2024-0004",
				Type:       "receipt",
				Author:     "Dmitry Kozlov",
				Department: "Finance",
				IssueDate:  "2024-03-10",
				Amount:     2500,
				Status:     "draft",
			},
		},
	}
}
