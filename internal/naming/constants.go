package naming

// ============================================================================
// Name Format Constants
// ============================================================================

// NameFormatTemplate joins the chosen prefix and suffix. Format: "<prefix> <suffix>"
const NameFormatTemplate = "%s %s"
