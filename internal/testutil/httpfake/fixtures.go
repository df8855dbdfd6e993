package httpfake

// Canned ASMX responses shared by tests.
const (
	ArrayOfInt = `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfInt xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns="http://www.chemspider.com/">
  <int>682</int>
  <int>2157</int>
</ArrayOfInt>`

	CSIDString = `<?xml version="1.0" encoding="utf-8"?>
<string xmlns="http://www.chemspider.com/">682</string>`

	InChIKeyString = `<?xml version="1.0" encoding="utf-8"?>
<string xmlns="http://www.chemspider.com/">LFQSCWFLJHTTHZ-UHFFFAOYSA-N</string>`

	Boolean = `<?xml version="1.0" encoding="utf-8"?>
<boolean xmlns="http://www.chemspider.com/">true</boolean>`

	CompoundInfo = `<?xml version="1.0" encoding="utf-8"?>
<CompoundInfo xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns="http://www.chemspider.com/">
  <CSID>682</CSID>
  <InChI>InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3</InChI>
  <InChIKey>LFQSCWFLJHTTHZ-UHFFFAOYSA-N</InChIKey>
  <SMILES>CCO</SMILES>
</CompoundInfo>`

	ExtendedCompoundInfo = `<?xml version="1.0" encoding="utf-8"?>
<ExtendedCompoundInfo xmlns="http://www.chemspider.com/">
  <CSID>682</CSID>
  <MF>C_{2}H_{6}O</MF>
  <SMILES>CCO</SMILES>
  <InChI>InChI=1/C2H6O/c1-2-3/h3H,2H2,1H3</InChI>
  <InChIKey>LFQSCWFLJHTTHZ-UHFFFAOYAB</InChIKey>
  <AverageMass>46.0684</AverageMass>
  <MolecularWeight>46.0684</MolecularWeight>
  <MonoisotopicMass>46.041866</MonoisotopicMass>
  <NominalMass>46</NominalMass>
  <ALogP>0</ALogP>
  <XLogP>0</XLogP>
  <CommonName>Ethanol</CommonName>
</ExtendedCompoundInfo>`

	ArrayOfSpectrumInfo = `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfCSSpectrumInfo xmlns="http://www.chemspider.com/">
  <CSSpectrumInfo>
    <spc_id>36</spc_id>
    <spc_type>HNMR</spc_type>
    <csid>682</csid>
    <file_name>ethanol_1h.jdx</file_name>
    <comments>400 MHz</comments>
    <original_url>http://example.org/spectra/36</original_url>
    <submitted_date>2007-08-08T20:18:36.593</submitted_date>
  </CSSpectrumInfo>
</ArrayOfCSSpectrumInfo>`

	ArrayOfExtRef = `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfExtRef xmlns="http://www.chemspider.com/">
  <ExtRef>
    <CSID>682</CSID>
    <ds_name>Wikipedia</ds_name>
    <ds_url>http://en.wikipedia.org/</ds_url>
    <ext_id>Ethanol</ext_id>
    <ext_url>http://en.wikipedia.org/wiki/Ethanol</ext_url>
  </ExtRef>
</ArrayOfExtRef>`
)
