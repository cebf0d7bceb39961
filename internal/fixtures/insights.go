package fixtures

import "github.com/alkime/itranscript/internal/clinical"

// Insights returns the fixed insights shown next to the transcript.
func Insights() []clinical.ClinicalInsight {
	return []clinical.ClinicalInsight{
		{
			ID:    "i1",
			Type:  clinical.InsightFinding,
			Title: "Key Clinical Findings",
			Content: []string{
				"Patient reports tingling sensation in feet for 2 weeks",
				"Symptoms include pins and needles in toes extending to ankles",
				"Associated numbness and cold sensation in feet",
				"Symptoms worse at night",
				"Medication compliance confirmed (Metformin BID)",
			},
			Confidence:       clinical.ConfidenceHigh,
			LinkedSegmentIDs: []string{"s2", "s4", "s6", "s8"},
			LinkedTimestamps: []float64{5, 22, 42, 62},
			Explanation: "These findings were extracted from direct patient statements describing symptom onset, " +
				"location, character, and timing. Medication compliance was confirmed through explicit patient acknowledgment.",
		},
		{
			ID:               "i2",
			Type:             clinical.InsightDiagnosis,
			Title:            "Differential Diagnosis",
			Content:          []string{"Based on patient presentation and history"},
			Confidence:       clinical.ConfidenceMedium,
			LinkedSegmentIDs: []string{"s2", "s4", "s6"},
			Explanation: "Diagnosis considerations are based on the combination of sensory symptoms (tingling, numbness, " +
				"cold sensation) in a patient with known Type 2 Diabetes on Metformin therapy.",
		},
		{
			ID:               "i3",
			Type:             clinical.InsightAlert,
			Title:            "Safety Alerts",
			Content:          []string{"Potential complications requiring attention"},
			Confidence:       clinical.ConfidenceHigh,
			Severity:         clinical.SeverityMedium,
			LinkedSegmentIDs: []string{"s7", "s8"},
			Explanation: "Safety considerations arise from the known association between long-term Metformin use " +
				"and B12 deficiency, combined with the development of neuropathic symptoms.",
		},
		{
			ID:               "i4",
			Type:             clinical.InsightTask,
			Title:            "Recommended Clinical Tasks",
			Content:          []string{"Actions to consider based on this visit"},
			Confidence:       clinical.ConfidenceHigh,
			LinkedSegmentIDs: []string{"s7"},
			Explanation:      "Tasks are generated based on standard of care for diabetic patients presenting with new neuropathic symptoms.",
		},
	}
}

// SuppressedInsights returns low-confidence insights hidden by default.
func SuppressedInsights() []clinical.ClinicalInsight {
	return []clinical.ClinicalInsight{
		{
			ID:                "si1",
			Type:              clinical.InsightDiagnosis,
			Title:             "Possible Charcot Foot",
			Content:           []string{"Early Charcot neuroarthropathy cannot be excluded"},
			Confidence:        clinical.ConfidenceLow,
			IsSuppressed:      true,
			SuppressionReason: "Confidence score (32%) below threshold. Insufficient clinical evidence in transcript.",
			LinkedSegmentIDs:  []string{"s4"},
		},
		{
			ID:                "si2",
			Type:              clinical.InsightFinding,
			Title:             "Possible Vitamin D Deficiency",
			Content:           []string{"May contribute to neuropathy symptoms"},
			Confidence:        clinical.ConfidenceLow,
			IsSuppressed:      true,
			SuppressionReason: "Confidence score (28%) below threshold. No direct evidence in patient report.",
		},
	}
}

func Differentials() []clinical.DifferentialDiagnosis {
	return []clinical.DifferentialDiagnosis{
		{
			ID:               "d1",
			Condition:        "Diabetic Peripheral Neuropathy",
			Likelihood:       clinical.LikelihoodLikely,
			Reasoning:        "Classic presentation in long-standing T2DM patient with bilateral symmetric sensory symptoms",
			LinkedSegmentIDs: []string{"s2", "s4", "s6"},
		},
		{
			ID:               "d2",
			Condition:        "Peripheral Vascular Disease",
			Likelihood:       clinical.LikelihoodProbable,
			Reasoning:        "Cold sensation and T2DM history suggest possible vascular component",
			LinkedSegmentIDs: []string{"s6"},
		},
		{
			ID:               "d3",
			Condition:        "B12 Deficiency Neuropathy",
			Likelihood:       clinical.LikelihoodPossible,
			Reasoning:        "Metformin use associated with B12 deficiency; consider screening",
			LinkedSegmentIDs: []string{"s7", "s8"},
		},
	}
}

func SafetyAlerts() []clinical.SafetyAlert {
	return []clinical.SafetyAlert{
		{
			ID:               "sa1",
			Type:             clinical.SafetyDrugInteraction,
			Title:            "B12 Monitoring Required",
			Description:      "Long-term Metformin use may cause B12 deficiency. Consider annual B12 level monitoring.",
			Severity:         clinical.SeverityMedium,
			LinkedSegmentIDs: []string{"s7", "s8"},
		},
		{
			ID:               "sa2",
			Type:             clinical.SafetyRisk,
			Title:            "Foot Care Assessment Needed",
			Description:      "Neuropathy symptoms increase risk of foot ulcers and infections in diabetic patients.",
			Severity:         clinical.SeverityHigh,
			LinkedSegmentIDs: []string{"s2", "s4"},
		},
	}
}

func Tasks() []clinical.ClinicalTask {
	return []clinical.ClinicalTask{
		{ID: "ct1", Task: "Order HbA1c test", Priority: clinical.PriorityHigh, Source: clinical.TaskExplicit, LinkedSegmentID: "s7"},
		{ID: "ct2", Task: "Perform monofilament foot exam", Priority: clinical.PriorityHigh, Source: clinical.TaskExplicit, LinkedSegmentID: "s7"},
		{ID: "ct3", Task: "Check B12 levels", Priority: clinical.PriorityMedium, IsImplicit: true, Source: clinical.TaskInferred, LinkedSegmentID: "s8"},
		{ID: "ct4", Task: "Order nerve conduction study if symptoms persist", Priority: clinical.PriorityMedium,
			IsImplicit: true, Source: clinical.TaskInferred, LinkedSegmentID: "s4"},
		{ID: "ct5", Task: "Refer to diabetic foot clinic", Priority: clinical.PriorityLow, IsImplicit: true, Source: clinical.TaskInferred, LinkedSegmentID: "s2"},
		{ID: "ct6", Task: "Schedule follow-up in 4 weeks", Priority: clinical.PriorityMedium, Source: clinical.TaskExplicit},
	}
}
