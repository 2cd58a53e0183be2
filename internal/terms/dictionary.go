package terms

import "github.com/medrecord-tools/clinex/constants"

// Dictionary maps a term category to its configured vocabulary.
type Dictionary map[constants.TermCategory][]string

// Vocabulary groups the built-in term lists by clinical role. Conditions and
// symptoms feed the clinical-term dictionary; sites feed the anatomical one;
// procedures feed the procedures field of the assembled report.
type Vocabulary struct {
	Conditions []string
	Procedures []string
	Symptoms   []string
	Sites      []string
}

// TermDictionary builds the matcher dictionary for clinical terms and
// anatomical locations.
func (v Vocabulary) TermDictionary() Dictionary {
	clinical := make([]string, 0, len(v.Conditions)+len(v.Symptoms))
	clinical = append(clinical, v.Conditions...)
	clinical = append(clinical, v.Symptoms...)
	return Dictionary{
		constants.ClinicalTerm:       clinical,
		constants.AnatomicalLocation: v.Sites,
	}
}

// ProcedureDictionary builds a single-category dictionary for the known
// procedure names.
func (v Vocabulary) ProcedureDictionary() Dictionary {
	return Dictionary{constants.ClinicalTerm: v.Procedures}
}

// DefaultVocabulary returns the built-in gastroenterology-focused term lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Conditions: []string{
			"diverticulosis", "diverticulitis", "hemorrhoids", "polyp", "polyps",
			"colitis", "proctitis", "gastritis", "esophagitis", "duodenitis",
			"bleeding", "ulcer", "ulceration", "inflammation", "stricture",
			"obstruction", "perforation", "fissure", "fistula", "abscess",
			"barrett's esophagus", "reflux", "gerd", "ibd", "crohn's disease",
			"ulcerative colitis", "celiac disease", "gastroenteritis",
			"adenoma", "adenomatous", "hyperplastic", "sessile", "pedunculated",
			"erosion", "erythema", "friability", "nodular", "villous",
			"tubular", "serrated", "dysplasia", "metaplasia", "neoplasia",
		},
		Procedures: []string{
			"colonoscopy", "endoscopy", "egd", "sigmoidoscopy", "biopsy",
			"polypectomy", "cauterization", "ablation", "dilation",
			"sclerotherapy", "injection", "clipping", "argon plasma coagulation",
			"band ligation", "thermal therapy", "cryotherapy",
			"esophagogastroduodenoscopy", "upper endoscopy", "lower endoscopy",
			"endoscopic mucosal resection", "emr", "esd", "hemostasis",
		},
		Symptoms: []string{
			"bleeding", "pain", "cramping", "nausea", "vomiting", "diarrhea",
			"constipation", "bloating", "distension", "melena", "hematochezia",
			"hematemesis", "dysphagia", "odynophagia", "heartburn", "reflux",
			"indigestion", "anorexia", "weight loss", "fatigue", "weakness",
			"abdominal pain", "rectal bleeding", "change in bowel habits",
		},
		Sites: []string{
			"esophagus", "stomach", "duodenum", "jejunum", "ileum", "cecum",
			"ascending colon", "transverse colon", "descending colon", "sigmoid colon",
			"rectum", "anus", "anal canal", "gastroesophageal junction", "pylorus",
			"antrum", "fundus", "cardia", "terminal ileum", "ileocecal valve",
			"appendix", "liver", "gallbladder", "pancreas", "spleen", "peritoneum",
			"mucosa", "submucosa", "muscularis", "serosa", "lumen",
			"colon", "distal", "proximal", "sigmoid", "cecal",
			"hepatic flexure", "splenic flexure",
		},
	}
}
