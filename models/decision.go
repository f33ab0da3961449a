package models

// Canonical decision classes used as classifier training labels. These come
// from frequency analysis of the DGSI corpus; the set is fixed.
const (
	ClassProcedente   = "PROCEDENTE"
	ClassImprocedente = "IMPROCEDENTE"
	ClassProvido      = "PROVIDO"
	ClassConfirmada   = "CONFIRMADA"
	ClassRevogada     = "REVOGADA"
	ClassAnulada      = "ANULADA"
	ClassNulidade     = "NULIDADE"
	ClassConcedida    = "CONCEDIDA"
	ClassNegada       = "NEGADA"
	ClassResolvido    = "RESOLVIDO"
	ClassReenvio      = "REENVIO"
	ClassInutilidade  = "INUTILIDADE"
	ClassDecretada    = "DECRETADA"
	ClassAlterada     = "ALTERADA"

	// ClassUnsure is a pseudo-class meaning "no confident mapping". It is
	// never used as a training label and never persisted on a document.
	ClassUnsure = "UNSURE"
)

// CanonicalClasses lists the 14 real classes, excluding UNSURE.
var CanonicalClasses = []string{
	ClassImprocedente,
	ClassProcedente,
	ClassProvido,
	ClassConfirmada,
	ClassRevogada,
	ClassAnulada,
	ClassAlterada,
	ClassNulidade,
	ClassConcedida,
	ClassNegada,
	ClassResolvido,
	ClassReenvio,
	ClassInutilidade,
	ClassDecretada,
}

// IsCanonicalClass reports whether label is one of the 14 canonical classes.
func IsCanonicalClass(label string) bool {
	for _, c := range CanonicalClasses {
		if c == label {
			return true
		}
	}
	return false
}
