package isa

import "github.com/sarchlab/instyaml/core"

var lwRecord = core.NewBuilder().
	WithName("lw").
	WithLongName("Load word").
	WithDescription(
		"Load 32 bits of data into register `xd` from an\n" +
			"address formed by adding `xs1` to a signed offset.\n" +
			"Sign extend the result.\n").
	WithDefinedBy("I").
	WithAssembly("xd, imm(xs1)").
	WithEncoding("{match: '-----------------010-----0000011', variables: " +
		"[{location: 31-20, name: imm}, {location: 19-15, name: xs1}, " +
		"{location: 11-7, name: xd}]}").
	WithAccess("{s: always, u: always, vs: always, vu: always}").
	WithOperation(
		"XReg virtual_address = X[xs1] + $signed(imm);\n" +
			"X[xd] = $signed(read_memory<32>(virtual_address, $encoding));\n").
	WithSail(lwSail).
	Build()

// The sail() body is kept as imported from riscv-unified-db, including its
// cut-off last line.
const lwSail = "{\n" +
	"  let offset : xlenbits = sign_extend(imm);\n" +
	"  /* Get the address, X(xs1) + offset.\n" +
	"     Some extensions perform additional checks on address validity. */\n" +
	"  match ext_data_get_addr(xs1, offset, Read(Data), width) {\n" +
	"    Ext_DataAddr_Error(e)  => { ext_handle_data_check_error(e); RETIRE_FAIL },\n" +
	"    Ext_DataAddr_OK(vaddr) =>\n" +
	"      if   check_misaligned(vaddr, width)\n" +
	"      then { handle_mem_exception(vaddr, E_Load_Addr_Align()); RETIRE_FAIL }\n" +
	"      else match translateAddr(vaddr, Read(Data)) {\n" +
	"        TR_Failure(e, _) => { handle_mem_exception(vaddr, e); RETIRE_FAIL },\n" +
	"        TR_Address(paddr, _) =>\n" +
	"          match (width) {\n" +
	"            BYTE =>\n" +
	"              process_load(xd, vaddr, mem_read(Read(Data), paddr, 1, aq, rl, false), is_unsigned),\n" +
	"            HALF =>\n" +
	"              process_load(xd, vaddr, mem_read(Read(Data), paddr, 2, aq, rl, false), is_unsigned),\n" +
	"            WORD =>\n" +
	"              process_load(xd, vaddr, mem_read(Read(Data), paddr, 4, aq, rl, false), is_unsigned),\n" +
	"            DOUBLE if sizeof(xlen) \n"

// LW returns the record of the "lw" (load word) instruction. Records are
// values, so callers cannot change what later calls see.
func LW() core.Record {
	return lwRecord
}
