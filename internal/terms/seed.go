package terms

// seedTerms is the built-in bilingual seed list for the data-science
// glossary. Hints are ordered: the first one is used as the primary
// translation when seeding terms.yml.
var seedTerms = []ReferenceTerm{
	// Machine learning
	{EN: "machine learning", ETHints: []string{"masinõpe"}, Category: "machine-learning"},
	{EN: "artificial intelligence", ETHints: []string{"tehisintellekt", "tehisaru"}, Category: "machine-learning"},
	{EN: "neural network", ETHints: []string{"närvivõrk", "tehisnärvivõrk"}, Category: "machine-learning"},
	{EN: "deep learning", ETHints: []string{"süvaõpe"}, Category: "machine-learning"},
	{EN: "supervised learning", ETHints: []string{"juhendatud õpe"}, Category: "machine-learning"},
	{EN: "unsupervised learning", ETHints: []string{"juhendamata õpe"}, Category: "machine-learning"},
	{EN: "reinforcement learning", ETHints: []string{"stiimulõpe", "kinnitusõpe"}, Category: "machine-learning"},
	{EN: "training data", ETHints: []string{"treeningandmed", "õppeandmed"}, Category: "machine-learning"},
	{EN: "test data", ETHints: []string{"testandmed"}, Category: "machine-learning"},
	{EN: "overfitting", ETHints: []string{"ülesobitumine", "üleõppimine"}, Category: "machine-learning"},
	{EN: "feature engineering", ETHints: []string{"tunnuste loomine"}, Category: "machine-learning"},
	{EN: "feature", ETHints: []string{"tunnus"}, Category: "machine-learning"},
	{EN: "classification", ETHints: []string{"klassifitseerimine", "liigitamine"}, Category: "machine-learning"},
	{EN: "clustering", ETHints: []string{"klasterdamine"}, Category: "machine-learning"},
	{EN: "regression", ETHints: []string{"regressioon"}, Category: "machine-learning"},
	{EN: "decision tree", ETHints: []string{"otsustuspuu"}, Category: "machine-learning"},
	{EN: "random forest", ETHints: []string{"juhumets", "otsustusmets"}, Category: "machine-learning"},
	{EN: "gradient descent", ETHints: []string{"gradientlaskumine"}, Category: "machine-learning"},
	{EN: "natural language processing", ETHints: []string{"loomuliku keele töötlus", "keeletehnoloogia"}, Category: "machine-learning"},
	{EN: "computer vision", ETHints: []string{"masinnägemine", "arvutinägemine"}, Category: "machine-learning"},
	{EN: "language model", ETHints: []string{"keelemudel"}, Category: "machine-learning"},
	{EN: "cross-validation", ETHints: []string{"ristvalideerimine"}, Category: "machine-learning"},
	{EN: "hyperparameter", ETHints: []string{"hüperparameeter"}, Category: "machine-learning"},

	// Statistics
	{EN: "statistics", ETHints: []string{"statistika"}, Category: "statistics"},
	{EN: "probability", ETHints: []string{"tõenäosus"}, Category: "statistics"},
	{EN: "distribution", ETHints: []string{"jaotus"}, Category: "statistics"},
	{EN: "standard deviation", ETHints: []string{"standardhälve"}, Category: "statistics"},
	{EN: "correlation", ETHints: []string{"korrelatsioon"}, Category: "statistics"},
	{EN: "hypothesis testing", ETHints: []string{"hüpoteesi kontrollimine", "hüpoteeside testimine"}, Category: "statistics"},
	{EN: "confidence interval", ETHints: []string{"usaldusvahemik", "usaldusintervall"}, Category: "statistics"},
	{EN: "sample", ETHints: []string{"valim"}, Category: "statistics"},
	{EN: "outlier", ETHints: []string{"erind", "võõrväärtus"}, Category: "statistics"},
	{EN: "time series", ETHints: []string{"aegrida"}, Category: "statistics"},

	// Data engineering
	{EN: "data engineering", ETHints: []string{"andmetehnika"}, Category: "data-engineering"},
	{EN: "data pipeline", ETHints: []string{"andmetorustik", "andmekonveier"}, Category: "data-engineering"},
	{EN: "data warehouse", ETHints: []string{"andmeladu"}, Category: "data-engineering"},
	{EN: "data lake", ETHints: []string{"andmejärv"}, Category: "data-engineering"},
	{EN: "data cleaning", ETHints: []string{"andmepuhastus", "andmete puhastamine"}, Category: "data-engineering"},
	{EN: "data quality", ETHints: []string{"andmekvaliteet"}, Category: "data-engineering"},
	{EN: "big data", ETHints: []string{"suurandmed"}, Category: "data-engineering"},
	{EN: "batch processing", ETHints: []string{"pakktöötlus"}, Category: "data-engineering"},
	{EN: "stream processing", ETHints: []string{"vootöötlus"}, Category: "data-engineering"},
	{EN: "metadata", ETHints: []string{"metaandmed"}, Category: "data-engineering"},

	// Databases
	{EN: "database", ETHints: []string{"andmebaas"}, Category: "databases"},
	{EN: "relational database", ETHints: []string{"relatsiooniline andmebaas"}, Category: "databases"},
	{EN: "query", ETHints: []string{"päring"}, Category: "databases"},
	{EN: "index", ETHints: []string{"indeks"}, Category: "databases"},
	{EN: "transaction", ETHints: []string{"transaktsioon", "tehing"}, Category: "databases"},
	{EN: "primary key", ETHints: []string{"primaarvõti"}, Category: "databases"},

	// Analysis and visualization
	{EN: "data science", ETHints: []string{"andmeteadus"}, Category: "general"},
	{EN: "data analysis", ETHints: []string{"andmeanalüüs"}, Category: "general"},
	{EN: "data visualization", ETHints: []string{"andmete visualiseerimine", "andmevisualiseerimine"}, Category: "general"},
	{EN: "dashboard", ETHints: []string{"töölaud", "juhtpaneel"}, Category: "general"},
	{EN: "data set", ETHints: []string{"andmestik", "andmekogum"}, Category: "general"},
	{EN: "data mining", ETHints: []string{"andmekaeve"}, Category: "general"},
	{EN: "predictive model", ETHints: []string{"ennustusmudel", "prognoosimudel"}, Category: "general"},
	{EN: "anomaly detection", ETHints: []string{"anomaaliate tuvastamine"}, Category: "general"},
	{EN: "open data", ETHints: []string{"avaandmed"}, Category: "general"},
	{EN: "data protection", ETHints: []string{"andmekaitse"}, Category: "general"},
}
